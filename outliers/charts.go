package outliers

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/iscol-meeting/iscol2025/chart"
	"github.com/iscol-meeting/iscol2025/helpers"
)

// Charts renders terminal charts of the outlier distributions: registrations
// by hour, top duplicates, comment lengths, the daily timeline with spikes,
// affiliation name lengths, and decision patterns.
func Charts(r *Report) string {
	sections := []string{
		hourChart(r.Timing.Hours),
		duplicatesChart(r.People.Duplicates),
		chart.Histogram("💬 Comment Length Distribution", r.Comments.Lengths, 25, meanFooter(r.Comments.Lengths)),
		timelineChart(r.Timing.PerDay),
		chart.Histogram("🏢 Affiliation Name Length", r.Affiliations.Lengths, 10, iqrFooter(r.Affiliations.Lengths)),
		decisionsChart(r.Patterns.Decisions),
	}
	return strings.Join(sections, "\n\n")
}

func hourChart(hours [24]int) string {
	total := 0
	data := make([]float64, len(hours))
	for i, c := range hours {
		total += c
		data[i] = float64(c)
	}
	if total == 0 {
		return chart.Line("🦉 Registration by Hour", nil, "")
	}
	return chart.Line("🦉 Registration by Hour", data, "hours 0-23, night owls 22:00-06:00")
}

func duplicatesChart(dupes []Duplicate) string {
	items := make([]chart.Item, 0, 10)
	for _, d := range head(dupes, 10) {
		items = append(items, chart.Item{Label: helpers.TruncateText(d.Email, 23), Value: d.Count})
	}
	return chart.Bar("👥 Top Duplicate Registrations", items)
}

func timelineChart(perDay []DayCount) string {
	if len(perDay) == 0 {
		return chart.Line("📅 Registration Timeline (Spikes Highlighted)", nil, "")
	}

	data := make([]float64, len(perDay))
	for i, d := range perDay {
		data[i] = float64(d.Count)
	}

	footer := fmt.Sprintf("%s .. %s", perDay[0].Date, perDay[len(perDay)-1].Date)
	if spikes := spikeDays(perDay); len(spikes) > 0 {
		footer += "  high activity: " + strings.Join(spikes, ", ")
	}
	return chart.Line("📅 Registration Timeline (Spikes Highlighted)", data, footer)
}

// spikeDays returns dates whose count exceeds the mean by more than 1.5
// standard deviations.
func spikeDays(perDay []DayCount) []string {
	if len(perDay) < 2 {
		return nil
	}

	mean := 0.0
	for _, d := range perDay {
		mean += float64(d.Count)
	}
	mean /= float64(len(perDay))

	variance := 0.0
	for _, d := range perDay {
		diff := float64(d.Count) - mean
		variance += diff * diff
	}
	std := math.Sqrt(variance / float64(len(perDay)-1))

	var spikes []string
	for _, d := range perDay {
		if float64(d.Count) > mean+1.5*std {
			spikes = append(spikes, d.Date)
		}
	}
	return spikes
}

func meanFooter(lengths []int) string {
	if len(lengths) == 0 {
		return ""
	}
	sum := 0
	for _, l := range lengths {
		sum += l
	}
	return fmt.Sprintf("mean: %.0f characters", float64(sum)/float64(len(lengths)))
}

// iqrFooter marks the Tukey outlier thresholds at 1.5 interquartile ranges.
func iqrFooter(lengths []int) string {
	if len(lengths) < 4 {
		return ""
	}

	sorted := make([]float64, len(lengths))
	for i, l := range lengths {
		sorted[i] = float64(l)
	}
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	return fmt.Sprintf("outliers: below %.0f or above %.0f characters", q1-1.5*iqr, q3+1.5*iqr)
}

// quantile interpolates linearly between the two nearest ranks of an
// ascending series.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}

func decisionsChart(d Decisions) string {
	return chart.Bar("🤷 Decision Patterns & Uncertainty", []chart.Item{
		{Label: "Attending: Yes", Value: d.AttendingYes},
		{Label: "Attending: Maybe", Value: d.AttendingMaybe},
		{Label: "Attending: No", Value: d.AttendingNo},
		{Label: "Driving: Maybe", Value: d.DrivingMaybe},
	})
}
