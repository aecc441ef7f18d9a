// Package report builds descriptive statistics over cleaned registration
// records and renders them for the terminal.
package report

import (
	"sort"
	"time"

	"github.com/iscol-meeting/iscol2025/classify"
	"github.com/iscol-meeting/iscol2025/registration"
)

// Count is one value with its frequency, plus a percentage where the report
// shows one.
type Count struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent,omitempty"`
}

// Summary is the full descriptive report for one registration export.
type Summary struct {
	Cleaning   registration.CleanStats `json:"cleaning"`
	Attendance Attendance              `json:"attendance"`
	Attendees  Attendees               `json:"attendees"`
	Timeline   Timeline                `json:"timeline"`
}

// Attendance covers every cleaned record.
type Attendance struct {
	Counts   []Count `json:"counts"`
	Expected int     `json:"expected"`
	Percent  float64 `json:"percent"` // share of unique participants who confirmed
}

// Attendees covers confirmed attendees only. Affiliation counts run over
// exploded normalized affiliations, one count per canonical name per person,
// so their totals can exceed Total.
type Attendees struct {
	Total              int     `json:"total"`
	TopAffiliations    []Count `json:"top_affiliations"`
	Roles              []Count `json:"roles"`
	RoleCategories     []Count `json:"role_categories"`
	Papers             []Count `json:"papers"`
	PaperSubmitters    int     `json:"paper_submitters"`
	Driving            []Count `json:"driving"`
	OrgTypes           []Count `json:"org_types"`
	OrgMentions        int     `json:"org_mentions"`
	UniqueAffiliations int     `json:"unique_affiliations"`
}

// Timeline covers registration timestamps of confirmed attendees.
type Timeline struct {
	PerDay  []Count `json:"per_day"`
	First   string  `json:"first,omitempty"`
	Last    string  `json:"last,omitempty"`
	Invalid int     `json:"invalid"`
}

// topAffiliationCount caps the affiliation leaderboard.
const topAffiliationCount = 20

// Build computes the summary over cleaned records. A nil categories table
// falls back to the built-in one.
func Build(records []*registration.Record, stats registration.CleanStats, cats *classify.Categories) *Summary {
	if cats == nil {
		cats = classify.Default()
	}

	s := &Summary{Cleaning: stats}

	unique := len(records)
	attendanceValues := make([]string, 0, unique)
	for _, r := range records {
		attendanceValues = append(attendanceValues, r.Attending)
	}
	s.Attendance.Counts = valueCounts(attendanceValues)
	s.Attendance.Expected = countOf(s.Attendance.Counts, registration.AnswerYes)
	if unique > 0 {
		s.Attendance.Percent = percent(s.Attendance.Expected, unique)
	}

	var attending []*registration.Record
	for _, r := range records {
		if r.IsAttending() {
			attending = append(attending, r)
		}
	}
	s.Attendees.Total = len(attending)

	var exploded, roles, papers, driving []string
	roleCats := make(map[string]int)
	for _, r := range attending {
		exploded = append(exploded, r.NormalizedAffiliations...)
		roles = append(roles, r.Role)
		papers = append(papers, r.SubmittedPaper)
		driving = append(driving, r.Driving)
		roleCats[cats.RoleCategory(r.Role)]++
	}

	top := valueCounts(exploded)
	if len(top) > topAffiliationCount {
		top = top[:topAffiliationCount]
	}
	s.Attendees.TopAffiliations = top

	s.Attendees.Roles = withPercent(valueCounts(roles), len(attending))
	s.Attendees.RoleCategories = withPercent([]Count{
		{Value: classify.RoleAcademic, Count: roleCats[classify.RoleAcademic]},
		{Value: classify.RoleIndustry, Count: roleCats[classify.RoleIndustry]},
		{Value: classify.RoleOther, Count: roleCats[classify.RoleOther]},
	}, len(attending))

	s.Attendees.Papers = valueCounts(papers)
	s.Attendees.PaperSubmitters = countOf(s.Attendees.Papers, registration.AnswerYes)
	s.Attendees.Driving = valueCounts(driving)

	orgTypes := make(map[string]int)
	uniqueAff := make(map[string]bool)
	for _, name := range exploded {
		orgTypes[cats.OrgCategory(name)]++
		uniqueAff[name] = true
	}
	s.Attendees.OrgMentions = len(exploded)
	s.Attendees.UniqueAffiliations = len(uniqueAff)
	s.Attendees.OrgTypes = withPercent([]Count{
		{Value: classify.OrgUniversity, Count: orgTypes[classify.OrgUniversity]},
		{Value: classify.OrgCompany, Count: orgTypes[classify.OrgCompany]},
		{Value: classify.OrgOther, Count: orgTypes[classify.OrgOther]},
	}, len(exploded))

	s.Timeline = buildTimeline(attending)

	return s
}

func buildTimeline(attending []*registration.Record) Timeline {
	var tl Timeline

	perDay := make(map[string]int)
	for _, r := range attending {
		if r.RegisteredAt.IsZero() {
			tl.Invalid++
			continue
		}
		perDay[r.RegisteredAt.Format(time.DateOnly)]++
	}

	days := make([]string, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Strings(days)

	for _, d := range days {
		tl.PerDay = append(tl.PerDay, Count{Value: d, Count: perDay[d]})
	}
	if len(days) > 0 {
		tl.First = days[0]
		tl.Last = days[len(days)-1]
	}
	return tl
}

// valueCounts tallies values and orders them by descending count, ties
// alphabetically for stable output.
func valueCounts(values []string) []Count {
	tally := make(map[string]int)
	for _, v := range values {
		tally[v]++
	}

	result := make([]Count, 0, len(tally))
	for v, c := range tally {
		result = append(result, Count{Value: v, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result
}

func withPercent(counts []Count, total int) []Count {
	if total == 0 {
		return counts
	}
	for i := range counts {
		counts[i].Percent = percent(counts[i].Count, total)
	}
	return counts
}

func countOf(counts []Count, value string) int {
	for _, c := range counts {
		if c.Value == value {
			return c.Count
		}
	}
	return 0
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
