package outliers

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCharts(t *testing.T) {
	out := Charts(Find(rawRecords(), nil))

	for _, want := range []string{
		"🦉 Registration by Hour",
		"night owls 22:00-06:00",
		"👥 Top Duplicate Registrations",
		"dana@gmail.com",
		"💬 Comment Length Distribution",
		"mean:",
		"📅 Registration Timeline (Spikes Highlighted)",
		"2025-04-20 .. 2025-04-26",
		"🏢 Affiliation Name Length",
		"🤷 Decision Patterns & Uncertainty",
		"Attending: Yes",
		"█",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Charts() missing %q", want)
		}
	}
}

func TestChartsEmpty(t *testing.T) {
	out := Charts(Find(nil, nil))
	if !strings.Contains(out, "no data") {
		t.Errorf("Charts() missing the no data note:\n%s", out)
	}
}

func TestSpikeDays(t *testing.T) {
	perDay := []DayCount{
		{Date: "2025-04-01", Count: 1},
		{Date: "2025-04-02", Count: 1},
		{Date: "2025-04-03", Count: 1},
		{Date: "2025-04-04", Count: 10},
		{Date: "2025-04-05", Count: 1},
	}
	if diff := cmp.Diff([]string{"2025-04-04"}, spikeDays(perDay)); diff != "" {
		t.Errorf("spikeDays mismatch (-want +got):\n%s", diff)
	}

	flat := []DayCount{
		{Date: "2025-04-01", Count: 2},
		{Date: "2025-04-02", Count: 2},
	}
	if got := spikeDays(flat); got != nil {
		t.Errorf("spikeDays(flat) = %v, want nil", got)
	}

	if got := spikeDays(perDay[:1]); got != nil {
		t.Errorf("spikeDays(single day) = %v, want nil", got)
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	for _, tc := range []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	} {
		if got := quantile(sorted, tc.p); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("quantile(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
