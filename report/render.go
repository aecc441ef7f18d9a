package report

import (
	"fmt"
	"strings"

	"github.com/iscol-meeting/iscol2025/classify"
	"github.com/iscol-meeting/iscol2025/registration"
)

const bannerWidth = 80

func banner(sb *strings.Builder, title string) {
	rule := strings.Repeat("=", bannerWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(rule + "\n")
}

// Render formats the summary as sectioned terminal text.
func Render(s *Summary) string {
	var sb strings.Builder

	banner(&sb, "ISCOL 2025 REGISTRATION DATA ANALYSIS")
	sb.WriteString("\n")

	banner(&sb, "DATA CLEANING SUMMARY")
	fmt.Fprintf(&sb, "Total records loaded: %d\n", s.Cleaning.Loaded)
	fmt.Fprintf(&sb, "Duplicates removed (by email): %d\n", s.Cleaning.DuplicatesRemoved)
	fmt.Fprintf(&sb, "Total unique participants: %d\n", s.Cleaning.Unique())
	fmt.Fprintf(&sb, "Records with valid email: %d\n", s.Cleaning.ValidEmails)
	fmt.Fprintf(&sb, "Records with affiliation: %d\n", s.Cleaning.WithAffiliation)
	sb.WriteString("\n")

	banner(&sb, "ATTENDANCE STATUS")
	for _, c := range s.Attendance.Counts {
		fmt.Fprintf(&sb, "  %-40s : %3d\n", c.Value, c.Count)
	}
	fmt.Fprintf(&sb, "\nExpected attendees: %d (%.1f%%)\n\n", s.Attendance.Expected, s.Attendance.Percent)

	banner(&sb, "TOP 20 AFFILIATIONS (Confirmed Attendees)")
	for i, c := range s.Attendees.TopAffiliations {
		fmt.Fprintf(&sb, "%2d. %-40s : %3d attendees\n", i+1, c.Value, c.Count)
	}
	sb.WriteString("\n")

	banner(&sb, "PARTICIPANT ROLES (Confirmed Attendees)")
	for _, c := range s.Attendees.Roles {
		fmt.Fprintf(&sb, "  %-40s : %3d (%5.1f%%)\n", c.Value, c.Count, c.Percent)
	}
	sb.WriteString("\nRole Categories:\n")
	for _, c := range s.Attendees.RoleCategories {
		fmt.Fprintf(&sb, "  %-9s %3d (%.1f%%)\n", c.Value+":", c.Count, c.Percent)
	}
	sb.WriteString("\n")

	banner(&sb, "PAPER SUBMISSIONS (Confirmed Attendees)")
	for _, c := range s.Attendees.Papers {
		fmt.Fprintf(&sb, "  %-40s : %3d\n", c.Value, c.Count)
	}
	var submitterPct float64
	if s.Attendees.Total > 0 {
		submitterPct = percent(s.Attendees.PaperSubmitters, s.Attendees.Total)
	}
	fmt.Fprintf(&sb, "\nPaper submitters: %d (%.1f%% of attendees)\n\n", s.Attendees.PaperSubmitters, submitterPct)

	banner(&sb, "DRIVING STATUS (Confirmed Attendees)")
	for _, c := range s.Attendees.Driving {
		fmt.Fprintf(&sb, "  %-40s : %3d\n", c.Value, c.Count)
	}
	sb.WriteString("\n")

	banner(&sb, "ORGANIZATION TYPES (Confirmed Attendees)")
	for _, c := range s.Attendees.OrgTypes {
		fmt.Fprintf(&sb, "  %-12s %4d (%.1f%%)\n", c.Value+":", c.Count, c.Percent)
	}
	fmt.Fprintf(&sb, "\nUnique affiliations: %d\n", s.Attendees.UniqueAffiliations)
	sb.WriteString("Note: counts include multiple affiliations per person, so totals may exceed the attendee count.\n\n")

	banner(&sb, "REGISTRATION TIMELINE")
	if len(s.Timeline.PerDay) > 0 {
		fmt.Fprintf(&sb, "First registration: %s\n", s.Timeline.First)
		fmt.Fprintf(&sb, "Last registration:  %s\n", s.Timeline.Last)
	}
	fmt.Fprintf(&sb, "Invalid timestamps: %d\n\n", s.Timeline.Invalid)

	banner(&sb, "SUMMARY STATISTICS")
	fmt.Fprintf(&sb, "Total registrations:   %4d\n", s.Cleaning.Unique())
	fmt.Fprintf(&sb, "Confirmed attendees:   %4d\n", s.Attendance.Expected)
	fmt.Fprintf(&sb, "Maybe attending:       %4d\n", countOf(s.Attendance.Counts, registration.AnswerMaybe))
	fmt.Fprintf(&sb, "Not attending:         %4d\n", countOf(s.Attendance.Counts, registration.AnswerNo))
	fmt.Fprintf(&sb, "Unique affiliations:   %4d\n", s.Attendees.UniqueAffiliations)
	fmt.Fprintf(&sb, "Paper submitters:      %4d\n", s.Attendees.PaperSubmitters)
	fmt.Fprintf(&sb, "Driving to event:      %4d\n", countOf(s.Attendees.Driving, registration.AnswerYes))
	fmt.Fprintf(&sb, "Academic participants: %4d\n", countOf(s.Attendees.RoleCategories, classify.RoleAcademic))
	fmt.Fprintf(&sb, "Industry participants: %4d\n", countOf(s.Attendees.RoleCategories, classify.RoleIndustry))

	return sb.String()
}
