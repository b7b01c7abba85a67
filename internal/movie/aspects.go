package movie

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// MaxChartAspects is how many aspects the chart shows.
const MaxChartAspects = 5

// Aspect is one reviewed quality of a film with the share of reviews that
// liked and disliked it.
type Aspect struct {
	Label    string  `json:"label"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

// Mentions is the combined weight used for ordering.
func (a Aspect) Mentions() float64 { return a.Positive + a.Negative }

// SortAspects orders aspects by total mentions, most discussed first.
// Ties keep their input order.
func SortAspects(aspects []Aspect) []Aspect {
	out := append([]Aspect(nil), aspects...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Mentions() > out[j].Mentions()
	})
	return out
}

// AxisPolicy decides the chart's value axis.
type AxisPolicy string

const (
	// PolicyPadded scales the axis to the largest value plus 10%.
	PolicyPadded AxisPolicy = "padded"
	// PolicyPercent fixes the axis to 0..100 and formats values as percents.
	PolicyPercent AxisPolicy = "percent"
)

// ParseAxisPolicy maps a config value to a policy. Unknown values fall back
// to PolicyPadded.
func ParseAxisPolicy(s string) AxisPolicy {
	switch AxisPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyPercent:
		return PolicyPercent
	default:
		return PolicyPadded
	}
}

// Chart is the aspect comparison: like vs dislike per aspect.
type Chart struct {
	Policy  AxisPolicy
	Aspects []Aspect
}

// NewChart keeps the MaxChartAspects most discussed aspects.
func NewChart(policy AxisPolicy, aspects []Aspect) Chart {
	sorted := SortAspects(aspects)
	if len(sorted) > MaxChartAspects {
		sorted = sorted[:MaxChartAspects]
	}
	return Chart{Policy: policy, Aspects: sorted}
}

// Empty reports whether there is nothing to draw.
func (c Chart) Empty() bool { return len(c.Aspects) == 0 }

// MaxValue is the largest like or dislike value, or 0 for an empty chart.
func (c Chart) MaxValue() float64 {
	var max float64
	for _, a := range c.Aspects {
		if a.Positive > max {
			max = a.Positive
		}
		if a.Negative > max {
			max = a.Negative
		}
	}
	return max
}

// UpperBound is the top of the value axis.
func (c Chart) UpperBound() float64 {
	if c.Policy == PolicyPercent {
		return 100
	}
	return math.Ceil(c.MaxValue() * 11 / 10)
}

// Fraction maps v onto 0..1 of the axis.
func (c Chart) Fraction(v float64) float64 {
	upper := c.UpperBound()
	if upper <= 0 {
		return 0
	}
	f := v / upper
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Format renders v for an axis label or bar annotation.
func (c Chart) Format(v float64) string {
	if c.Policy == PolicyPercent {
		return fmt.Sprintf("%.0f%%", v)
	}
	return fmt.Sprintf("%.0f", v)
}
