package ui

import (
	"strings"
	"testing"

	"isitcinema/internal/movie"

	"github.com/stretchr/testify/assert"
)

func TestRenderChartPadded(t *testing.T) {
	chart := movie.NewChart(movie.PolicyPadded, []movie.Aspect{
		{Label: "Story", Positive: 85, Negative: 90},
	})
	out := RenderChart(NewStyles(LightTheme()), chart, 60)

	assert.Contains(t, out, "Story")
	assert.Contains(t, out, "Like")
	assert.Contains(t, out, "Dislike")
	assert.Contains(t, out, "85")
	assert.Contains(t, out, "90")
	assert.Contains(t, out, "0-99")
}

func TestRenderChartPercent(t *testing.T) {
	chart := movie.NewChart(movie.PolicyPercent, []movie.Aspect{
		{Label: "Story", Positive: 85, Negative: 90},
	})
	out := RenderChart(NewStyles(DarkTheme()), chart, 60)

	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "0-100%")
}

func TestRenderChartTopFive(t *testing.T) {
	var aspects []movie.Aspect
	for _, l := range []string{"Acting", "Score", "Story", "Pacing", "Visuals", "Runtime"} {
		aspects = append(aspects, movie.Aspect{Label: l, Positive: 1, Negative: 1})
	}
	aspects[5].Positive = 0 // least discussed

	out := RenderChart(NewStyles(LightTheme()), movie.NewChart(movie.PolicyPadded, aspects), 60)
	assert.NotContains(t, out, "Runtime")
	// legend + two rows per aspect
	assert.Equal(t, 1+2*movie.MaxChartAspects, len(strings.Split(out, "\n")))
}

func TestRenderChartEmpty(t *testing.T) {
	out := RenderChart(NewStyles(LightTheme()), movie.NewChart(movie.PolicyPadded, nil), 60)
	assert.Equal(t, "No aspect data available.", stripANSI(out))
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "Story", truncateLabel("Story", 11))
	assert.Equal(t, "Cinematogr…", truncateLabel("Cinematography", 11))
}

func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEsc = false
		case !inEsc:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
