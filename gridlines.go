package plotaxis

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// lineTolerance is how far outside the window a tick may fall and still be
// drawn.
const lineTolerance = 1e-12

// SetGridlines plans the gridlines for the visible window [pl, pr] of the
// axis, aiming for count ticks. ml and mr are the fractions of the range
// taken up by plot margins on time axes; they narrow the span used to pick
// label precision but do not move ticks.
//
// A window with pr < pl is rejected and the previous gridlines are kept.
func (a *Axis) SetGridlines(pl, pr float64, count int, ml, mr float64) {
	if pr < pl {
		a.log.WithFields(logrus.Fields{"left": pl, "right": pr}).Error("cannot set right coord < left coord")
		return
	}
	if count <= 0 {
		a.log.WithField("count", count).Warn("missing gridline count, using 1")
		count = 1
	}
	a.pctL, a.pctR, a.pctSpan = pl, pr, pr-pl

	if a.kind.IsTime() {
		a.marginL = a.span.Mul(a.value(ml))
		a.marginR = a.span.Mul(a.value(mr))
	}

	dataSpan := a.span.Mul(a.value(a.pctSpan)).Float64()
	if a.kind.IsTime() {
		i := searchStep(&a.calSteps, dataSpan, count)
		a.step, a.fixed = a.value(a.calSteps.at(i)), 0
	} else {
		i := searchStep(&a.numSteps, dataSpan, count)
		a.step, a.fixed = a.value(a.numSteps.at(i)), a.fixedAt(i)
	}

	lines := a.calcLines(pl, pr)
	span := a.span.Sub(a.marginL.Add(a.marginR)).Mul(a.value(a.pctSpan))
	labels, common := a.calcLabels(lines, span)

	a.gridlines = lines
	a.gridlineLabels = labels
	a.labelWithCommon = joinNonEmpty(a.label, common)
}

func (a *Axis) fixedAt(i int) int {
	if i >= len(a.fixs) {
		return 0
	}
	return a.fixs[i]
}

// calcLines returns the percents of the ticks inside [pl, pr].
func (a *Axis) calcLines(pl, pr float64) []float64 {
	lo, hi := a.ValueAt(pl), a.ValueAt(pr)

	var lines []float64
	if a.kind == Category {
		from, to := a.PercentOf(lo), a.PercentOf(hi)
		for _, c := range a.categories {
			if c.pct >= from && c.pct <= to {
				lines = append(lines, c.pct)
			}
		}
		return lines
	}

	tol := a.value(lineTolerance)
	first, limit := lo.Sub(tol), hi.Add(tol)
	v := a.snap(lo.Div(a.step).Ceil().Mul(a.step))
	for v.Cmp(limit) <= 0 {
		if v.Cmp(first) >= 0 {
			lines = append(lines, a.PercentOf(v))
		}
		next := v.Add(a.step)
		if next.Cmp(v) <= 0 {
			a.log.WithFields(logrus.Fields{"value": v.String(), "step": a.step.String()}).
				Warn("step too small to advance ticks")
			break
		}
		if snapped := a.snap(next); snapped.Cmp(v) > 0 {
			next = snapped
		}
		v = next
	}
	return lines
}

// snap moves a tick of a time axis with a step longer than a day to the
// nearest boundary of the day, month or year containing it.
func (a *Axis) snap(v Value) Value {
	step := a.step.Float64()
	if a.kind != Time || step <= a.units.day {
		return v
	}
	unit := UnitYear
	switch {
	case step <= a.units.month:
		unit = UnitDay
	case step <= a.units.year:
		unit = UnitMonth
	}

	ms := v.Float64()
	t := msTime(ms)
	start := timeMs(a.cal.StartOf(t, a.timezone, unit))
	next := timeMs(a.cal.EndOf(t, a.timezone, unit).Add(time.Millisecond))
	if next-ms > ms-start {
		return Float(start)
	}
	return Float(next)
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
