package report

import (
	"fmt"
	"strings"

	"github.com/iscol-meeting/iscol2025/chart"
	"github.com/iscol-meeting/iscol2025/registration"
)

// topChartCount caps the affiliation bar chart.
const topChartCount = 10

// Charts renders the terminal chart block: top affiliations, role
// categories, organization types, paper submissions, and the per-day
// registration line.
func Charts(s *Summary) string {
	top := s.Attendees.TopAffiliations
	if len(top) > topChartCount {
		top = top[:topChartCount]
	}

	sections := []string{
		chart.Bar("Top 10 Affiliations", items(top)),
		chart.Bar("Participant Roles", items(s.Attendees.RoleCategories)),
		chart.Bar("Organization Types", items(s.Attendees.OrgTypes)),
		chart.Bar("Paper Submissions", items(yesNo(s.Attendees.Papers))),
		timelineChart(s.Timeline),
	}
	return strings.Join(sections, "\n\n")
}

func timelineChart(tl Timeline) string {
	data := make([]float64, len(tl.PerDay))
	for i, c := range tl.PerDay {
		data[i] = float64(c.Count)
	}

	var footer string
	if len(tl.PerDay) > 0 {
		footer = fmt.Sprintf("%s .. %s  (%d days", tl.First, tl.Last, len(tl.PerDay))
		if tl.Invalid > 0 {
			footer += fmt.Sprintf(", %d invalid timestamps", tl.Invalid)
		}
		footer += ")"
	}
	return chart.Line("Registrations per Day", data, footer)
}

func items(counts []Count) []chart.Item {
	result := make([]chart.Item, len(counts))
	for i, c := range counts {
		result[i] = chart.Item{Label: c.Value, Value: c.Count}
	}
	return result
}

// yesNo trims counts down to the Yes and No answers, in that order.
func yesNo(counts []Count) []Count {
	result := make([]Count, 0, 2)
	for _, v := range []string{registration.AnswerYes, registration.AnswerNo} {
		result = append(result, Count{Value: v, Count: countOf(counts, v)})
	}
	return result
}
