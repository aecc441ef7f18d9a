package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/iscol-meeting/iscol2025/registration"
)

func testRecords() []*registration.Record {
	day1 := time.Date(2025, 4, 21, 9, 10, 0, 0, time.UTC)
	day2 := time.Date(2025, 4, 22, 11, 0, 0, 0, time.UTC)

	return []*registration.Record{
		{
			FullName:               "Dana Cohen",
			Attending:              registration.AnswerYes,
			NormalizedAffiliations: []string{"Technion"},
			Role:                   "Graduate student",
			SubmittedPaper:         registration.AnswerYes,
			Driving:                registration.AnswerYes,
			RegisteredAt:           day1,
		},
		{
			FullName:               "Yoav Levi",
			Attending:              registration.AnswerYes,
			NormalizedAffiliations: []string{"Technion", "Google"},
			Role:                   "Industry researcher",
			SubmittedPaper:         registration.AnswerNo,
			Driving:                registration.AnswerNo,
			RegisteredAt:           day1.Add(80 * time.Minute),
		},
		{
			FullName:               "Noa Mor",
			Attending:              registration.AnswerYes,
			NormalizedAffiliations: []string{"Google"},
			Role:                   "Product Manager",
			SubmittedPaper:         registration.AnswerNo,
			Driving:                registration.AnswerMaybe,
			RegisteredAt:           day2,
		},
		{
			FullName:               "Amit Bar",
			Attending:              registration.AnswerYes,
			NormalizedAffiliations: []string{"Not specified"},
			Role:                   "Linguist",
			SubmittedPaper:         "Not specified",
			Driving:                "Not specified",
		},
		{
			FullName:               "Tal Shani",
			Attending:              registration.AnswerNo,
			NormalizedAffiliations: []string{"Technion"},
			Role:                   "Faculty member",
			SubmittedPaper:         registration.AnswerNo,
			Driving:                registration.AnswerNo,
			RegisteredAt:           day1,
		},
		{
			FullName:               "Omer Gal",
			Attending:              registration.AnswerMaybe,
			NormalizedAffiliations: []string{"Google"},
			Role:                   "Industry engineer",
			SubmittedPaper:         registration.AnswerNo,
			Driving:                registration.AnswerMaybe,
			RegisteredAt:           day2,
		},
	}
}

func testStats() registration.CleanStats {
	return registration.CleanStats{
		Loaded:            7,
		DuplicatesRemoved: 1,
		ValidEmails:       6,
		WithAffiliation:   4,
	}
}

func TestBuild(t *testing.T) {
	s := Build(testRecords(), testStats(), nil)

	wantAttendance := []Count{
		{Value: registration.AnswerYes, Count: 4},
		{Value: registration.AnswerMaybe, Count: 1},
		{Value: registration.AnswerNo, Count: 1},
	}
	if diff := cmp.Diff(wantAttendance, s.Attendance.Counts); diff != "" {
		t.Errorf("attendance counts mismatch (-want +got):\n%s", diff)
	}
	if s.Attendance.Expected != 4 {
		t.Errorf("Expected = %d, want 4", s.Attendance.Expected)
	}
	if want := float64(4) / float64(6) * 100; s.Attendance.Percent != want {
		t.Errorf("Percent = %v, want %v", s.Attendance.Percent, want)
	}

	if s.Attendees.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Attendees.Total)
	}

	// Google and Technion tie at two mentions each, so they order
	// alphabetically.
	wantTop := []Count{
		{Value: "Google", Count: 2},
		{Value: "Technion", Count: 2},
		{Value: "Not specified", Count: 1},
	}
	if diff := cmp.Diff(wantTop, s.Attendees.TopAffiliations); diff != "" {
		t.Errorf("top affiliations mismatch (-want +got):\n%s", diff)
	}

	wantRoles := []Count{
		{Value: "Graduate student", Count: 1, Percent: 25},
		{Value: "Industry researcher", Count: 1, Percent: 25},
		{Value: "Linguist", Count: 1, Percent: 25},
		{Value: "Product Manager", Count: 1, Percent: 25},
	}
	if diff := cmp.Diff(wantRoles, s.Attendees.Roles); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}

	wantRoleCats := []Count{
		{Value: "Academic", Count: 1, Percent: 25},
		{Value: "Industry", Count: 2, Percent: 50},
		{Value: "Other", Count: 1, Percent: 25},
	}
	if diff := cmp.Diff(wantRoleCats, s.Attendees.RoleCategories); diff != "" {
		t.Errorf("role categories mismatch (-want +got):\n%s", diff)
	}

	wantPapers := []Count{
		{Value: registration.AnswerNo, Count: 2},
		{Value: "Not specified", Count: 1},
		{Value: registration.AnswerYes, Count: 1},
	}
	if diff := cmp.Diff(wantPapers, s.Attendees.Papers); diff != "" {
		t.Errorf("papers mismatch (-want +got):\n%s", diff)
	}
	if s.Attendees.PaperSubmitters != 1 {
		t.Errorf("PaperSubmitters = %d, want 1", s.Attendees.PaperSubmitters)
	}

	wantDriving := []Count{
		{Value: registration.AnswerMaybe, Count: 1},
		{Value: registration.AnswerNo, Count: 1},
		{Value: "Not specified", Count: 1},
		{Value: registration.AnswerYes, Count: 1},
	}
	if diff := cmp.Diff(wantDriving, s.Attendees.Driving); diff != "" {
		t.Errorf("driving mismatch (-want +got):\n%s", diff)
	}

	wantOrgTypes := []Count{
		{Value: "University", Count: 2, Percent: 40},
		{Value: "Company", Count: 2, Percent: 40},
		{Value: "Other/Mixed", Count: 1, Percent: 20},
	}
	if diff := cmp.Diff(wantOrgTypes, s.Attendees.OrgTypes); diff != "" {
		t.Errorf("org types mismatch (-want +got):\n%s", diff)
	}
	if s.Attendees.OrgMentions != 5 {
		t.Errorf("OrgMentions = %d, want 5", s.Attendees.OrgMentions)
	}
	if s.Attendees.UniqueAffiliations != 3 {
		t.Errorf("UniqueAffiliations = %d, want 3", s.Attendees.UniqueAffiliations)
	}

	wantTimeline := Timeline{
		PerDay: []Count{
			{Value: "2025-04-21", Count: 2},
			{Value: "2025-04-22", Count: 1},
		},
		First:   "2025-04-21",
		Last:    "2025-04-22",
		Invalid: 1,
	}
	if diff := cmp.Diff(wantTimeline, s.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmpty(t *testing.T) {
	s := Build(nil, registration.CleanStats{}, nil)

	if s.Attendance.Expected != 0 || s.Attendance.Percent != 0 {
		t.Errorf("attendance = %+v, want zeros", s.Attendance)
	}
	if s.Attendees.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Attendees.Total)
	}
	if len(s.Timeline.PerDay) != 0 || s.Timeline.Invalid != 0 {
		t.Errorf("timeline = %+v, want empty", s.Timeline)
	}
	for _, c := range s.Attendees.RoleCategories {
		if c.Count != 0 || c.Percent != 0 {
			t.Errorf("role category %q = %+v, want zeros", c.Value, c)
		}
	}
}

func TestValueCounts(t *testing.T) {
	got := valueCounts([]string{"b", "a", "b", "c", "a", "b"})
	want := []Count{
		{Value: "b", Count: 3},
		{Value: "a", Count: 2},
		{Value: "c", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("valueCounts mismatch (-want +got):\n%s", diff)
	}

	// Ties order alphabetically.
	got = valueCounts([]string{"z", "a", "m"})
	want = []Count{
		{Value: "a", Count: 1},
		{Value: "m", Count: 1},
		{Value: "z", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tie ordering mismatch (-want +got):\n%s", diff)
	}
}
