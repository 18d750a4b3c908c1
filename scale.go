package plotaxis

import "math"

// LogScale is a plot.Normalizer for logarithmic axes. Values outside
// [min, max] are pinned to the nearest edge. The result does not depend on
// the logarithm base, so pair it with Ticks{Kind: Log, Base: b} for any b.
type LogScale struct{}

// Normalize returns the fractional position of x between min and max on a
// logarithmic scale. It returns NaN unless 0 < min < max.
func (LogScale) Normalize(min, max, x float64) float64 {
	if min <= 0 || max <= min {
		return math.NaN()
	}
	switch {
	case x <= min:
		return 0
	case x >= max:
		return 1
	}
	lmin := math.Log(min)
	return (math.Log(x) - lmin) / (math.Log(max) - lmin)
}
