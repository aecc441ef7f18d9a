// Package chart renders small terminal charts for the analysis reports.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Item is one labeled bar.
type Item struct {
	Label string
	Value int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	barStyles  = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD787")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787")),
	}
)

const (
	barWidth   = 40
	lineHeight = 8
)

func empty(title string) string {
	return titleStyle.Render(title) + "\n" + mutedStyle.Render("  no data")
}

// Bar renders horizontal bars scaled to the largest value.
func Bar(title string, items []Item) string {
	if len(items) == 0 {
		return empty(title)
	}

	max := 0
	labelWidth := 0
	for _, it := range items {
		if it.Value > max {
			max = it.Value
		}
		if w := lipgloss.Width(it.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title) + "\n")
	for i, it := range items {
		n := 0
		if max > 0 {
			n = it.Value * barWidth / max
		}
		if n == 0 && it.Value > 0 {
			n = 1
		}
		bar := barStyles[i%len(barStyles)].Render(strings.Repeat("█", n))
		fmt.Fprintf(&sb, "  %-*s %s %d\n", labelWidth, it.Label, bar, it.Value)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Line plots a series as an ascii line chart. A non-empty footer prints
// muted under the plot.
func Line(title string, data []float64, footer string) string {
	if len(data) == 0 {
		return empty(title)
	}

	plot := asciigraph.Plot(data,
		asciigraph.Height(lineHeight),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	parts := []string{titleStyle.Render(title), plot}
	if footer != "" {
		parts = append(parts, mutedStyle.Render("  "+footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Histogram buckets values into fixed-width bins starting at zero and
// renders them as bars.
func Histogram(title string, values []int, binWidth int, footer string) string {
	if len(values) == 0 || binWidth <= 0 {
		return empty(title)
	}

	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	bins := make([]int, max/binWidth+1)
	for _, v := range values {
		if v >= 0 {
			bins[v/binWidth]++
		}
	}

	items := make([]Item, len(bins))
	for i, count := range bins {
		lo := i * binWidth
		items[i] = Item{
			Label: fmt.Sprintf("%d-%d", lo, lo+binWidth-1),
			Value: count,
		}
	}

	out := Bar(title, items)
	if footer != "" {
		out += "\n" + mutedStyle.Render("  "+footer)
	}
	return out
}
