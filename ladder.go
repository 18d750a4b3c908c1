package plotaxis

import "math"

// units holds the time scale of an axis, in axis value units.
type units struct {
	unit, second, minute, hour, day, month, year float64
}

func newUnits(k Kind) units {
	u := 1.0
	if k == Nanotime {
		u = 1e6
	}
	return units{
		unit:   u,
		second: 1000 * u,
		minute: 1000 * 60 * u,
		hour:   1000 * 60 * 60 * u,
		day:    1000 * 60 * 60 * 24 * u,
		month:  1000 * 60 * 60 * 24 * 30 * u,
		year:   1000 * 60 * 60 * 24 * 365 * u,
	}
}

// buckets returns the label span thresholds from finest to coarsest.
func (u units) buckets(k Kind) []float64 {
	b := []float64{u.second, u.minute, u.hour, u.day, u.month, u.year}
	if k == Nanotime {
		b = append([]float64{u.unit}, b...)
	}
	return b
}

// ladder is an ascending, append-only list of candidate steps.
type ladder struct {
	steps []float64
	grow  func([]float64) []float64
}

// at returns step i, growing the ladder as needed.
func (l *ladder) at(i int) float64 {
	for i >= len(l.steps) {
		l.steps = l.grow(l.steps)
	}
	return l.steps[i]
}

func numericLadder() ladder {
	return ladder{grow: growNumeric}
}

// growNumeric appends the next decade: 1, 2.5 and 5 times 10^(n-6).
func growNumeric(steps []float64) []float64 {
	bs := math.Pow10(len(steps)/3 - 6)
	return append(steps, bs, 2.5*bs, 5*bs)
}

func calendarLadder(u units) ladder {
	return ladder{grow: func(steps []float64) []float64 {
		n := len(steps)
		if n == 0 {
			return append(steps, 1, 5)
		}
		prev := steps[n-1]
		switch {
		case prev < u.unit:
			return append(steps, prev+5)
		case prev == u.unit:
			return append(steps, prev+4*u.unit)
		case prev < u.second:
			return append(steps, prev+5*u.unit)
		case prev == u.second:
			return append(steps, prev+4*u.second)
		case prev < u.minute:
			return append(steps, prev+5*u.second)
		case prev == u.minute:
			return append(steps, prev+4*u.minute)
		case prev < u.hour:
			return append(steps, prev+5*u.minute)
		case prev < u.day:
			return append(steps, prev+u.hour)
		case prev < u.month:
			return append(steps, prev+u.day)
		case prev < u.year:
			return append(steps, prev+10*u.day)
		}
		return append(steps, prev+u.year)
	}}
}

// fixedDecimals returns the display precision paired with each numeric
// ladder index: 18 decades of three steps, never below floor.
func fixedDecimals(floor int) []int {
	fixs := make([]int, 0, 18*3)
	for i := 0; i < 18; i++ {
		f := max(6-i, floor)
		mid := f
		if i <= 6 {
			mid = f + 1
		}
		fixs = append(fixs, f, mid, f)
	}
	return fixs
}

// searchStep returns the index of the first ladder step whose tick count
// over span is closest to want. The ladder is strictly ascending, so the
// count falls monotonically and |count-want| has a single minimum; the walk
// stops at the first step that does not improve on it. Empty or reversed
// spans get the finest step.
func searchStep(l *ladder, span float64, want int) int {
	if !(span > 0) {
		return 0
	}
	best, minDiff := 0, math.Inf(1)
	for i := 0; ; i++ {
		w := l.at(i)
		if math.IsInf(w, 1) {
			break
		}
		diff := math.Abs(span/w - float64(want))
		if !(diff < minDiff) {
			break
		}
		best, minDiff = i, diff
	}
	return best
}
