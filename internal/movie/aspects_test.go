package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChart_UpperBound(t *testing.T) {
	story := []Aspect{{Label: "Story", Positive: 85, Negative: 90}}

	padded := NewChart(PolicyPadded, story)
	assert.Equal(t, 99.0, padded.UpperBound())

	percent := NewChart(PolicyPercent, story)
	assert.Equal(t, 100.0, percent.UpperBound())
}

func TestChart_EmptyPadded(t *testing.T) {
	c := NewChart(PolicyPadded, nil)
	assert.True(t, c.Empty())
	assert.Equal(t, 0.0, c.UpperBound())
	assert.Equal(t, 0.0, c.Fraction(10))
}

func TestChart_FractionClamps(t *testing.T) {
	c := NewChart(PolicyPercent, []Aspect{{Label: "Acting", Positive: 50, Negative: 10}})
	assert.InDelta(t, 0.5, c.Fraction(50), 1e-9)
	assert.Equal(t, 1.0, c.Fraction(150))
	assert.Equal(t, 0.0, c.Fraction(-5))
}

func TestChart_Format(t *testing.T) {
	assert.Equal(t, "42%", NewChart(PolicyPercent, nil).Format(42))
	assert.Equal(t, "42", NewChart(PolicyPadded, nil).Format(42))
}

func TestNewChart_SortsAndCaps(t *testing.T) {
	in := []Aspect{
		{Label: "Score", Positive: 10, Negative: 5},
		{Label: "Story", Positive: 60, Negative: 30},
		{Label: "Acting", Positive: 40, Negative: 40},
		{Label: "Pacing", Positive: 5, Negative: 50},
		{Label: "Visuals", Positive: 70, Negative: 1},
		{Label: "Humor", Positive: 1, Negative: 1},
	}
	c := NewChart(PolicyPadded, in)

	var labels []string
	for _, a := range c.Aspects {
		labels = append(labels, a.Label)
	}
	assert.Equal(t, []string{"Story", "Acting", "Visuals", "Pacing", "Score"}, labels)
	// Input untouched.
	assert.Equal(t, "Score", in[0].Label)
}

func TestParseAxisPolicy(t *testing.T) {
	assert.Equal(t, PolicyPercent, ParseAxisPolicy(" Percent "))
	assert.Equal(t, PolicyPadded, ParseAxisPolicy("padded"))
	assert.Equal(t, PolicyPadded, ParseAxisPolicy("bogus"))
}
