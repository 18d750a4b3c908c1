package plotaxis

import "math"

// PercentOf returns the position of v within the axis range as a fraction
// in [0, 1]. Values outside the range are clamped to its edges. An empty
// range maps everything to 0.
func (a *Axis) PercentOf(v Value) float64 {
	if a.span.Cmp(a.value(0)) == 0 {
		return 0
	}
	v = a.coerce(v)
	if v.Cmp(a.valL) < 0 {
		v = a.valL
	}
	if v.Cmp(a.valR) > 0 {
		v = a.valR
	}
	return v.Sub(a.valL).Div(a.span).Float64()
}

// ValueAt returns the value at fraction pct of the axis range, in the axis
// domain. pct is clamped to [0, 1].
func (a *Axis) ValueAt(pct float64) Value {
	pct = math.Max(0, math.Min(1, pct))
	return a.span.Mul(a.value(pct)).Add(a.valL)
}

// PowAt returns base raised to the value at pct, the data value shown at
// pct on a log axis.
func (a *Axis) PowAt(pct float64) float64 {
	return math.Pow(a.base, pct*a.span.Float64()+a.valL.Float64())
}
