package ui

import (
	"fmt"
	"strings"

	"isitcinema/internal/movie"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// RenderChart draws the like/dislike bars for each aspect, scaled to the
// chart's upper bound. Each aspect gets a green Like bar and an orange
// Dislike bar.
func RenderChart(s Styles, chart movie.Chart, width int) string {
	if chart.Empty() {
		return s.Muted.Render("No aspect data available.")
	}

	barW := BarWidth(width)
	like := progress.New(
		progress.WithSolidFill(string(LikeColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(barW),
	)
	dislike := progress.New(
		progress.WithSolidFill(string(DislikeColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(barW),
	)

	label := lipgloss.NewStyle().Width(ChartLabelWidth).Foreground(s.Theme.Foreground)
	value := lipgloss.NewStyle().Width(ChartValueWidth).Align(lipgloss.Right).Foreground(s.Theme.Muted)

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(LikeColor).Render("■ Like"))
	sb.WriteString("  ")
	sb.WriteString(lipgloss.NewStyle().Foreground(DislikeColor).Render("■ Dislike"))
	sb.WriteString(s.Muted.Render(fmt.Sprintf("   (axis 0-%s)", chart.Format(chart.UpperBound()))))
	sb.WriteString("\n")

	for _, a := range chart.Aspects {
		sb.WriteString(label.Render(truncateLabel(a.Label, ChartLabelWidth-1)))
		sb.WriteString(like.ViewAs(chart.Fraction(a.Positive)))
		sb.WriteString(value.Render(chart.Format(a.Positive)))
		sb.WriteString("\n")

		sb.WriteString(label.Render(""))
		sb.WriteString(dislike.ViewAs(chart.Fraction(a.Negative)))
		sb.WriteString(value.Render(chart.Format(a.Negative)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
