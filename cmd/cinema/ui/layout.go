package ui

// Layout constants for consistent spacing
const (
	ContentPaddingH = 4
	MinContentWidth = 40
	DefaultWidth    = 80

	// Chart
	ChartLabelWidth = 12
	ChartValueWidth = 6
	MinBarWidth     = 10
)

// ContentWidth returns the usable content column for a terminal width,
// capped at maxWidth when maxWidth > 0.
func ContentWidth(terminalWidth, maxWidth int) int {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	w := terminalWidth - ContentPaddingH
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// BarWidth is the width left for a chart bar in a column of width w.
func BarWidth(w int) int {
	bar := w - ChartLabelWidth - ChartValueWidth - 2
	if bar < MinBarWidth {
		return MinBarWidth
	}
	return bar
}
