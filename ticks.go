package plotaxis

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
)

// Ticks is a plot.Ticker that places and labels ticks with an Axis.
//
// Time axes take gonum values in seconds since the epoch. Category axes put
// Categories[i] at value i.
type Ticks struct {
	Kind            Kind
	NSuggestedTicks int
	Base            float64
	Timezone        string
	Categories      []string
	Logger          logrus.FieldLogger
}

// Ticks returns labelled major ticks for [min, max], plus unlabelled minor
// ticks on linear axes.
func (t Ticks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = 4
	}
	log := t.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	if max <= min {
		log.WithFields(logrus.Fields{"min": min, "max": max}).Warn("illegal tick range")
		return nil
	}

	a := New(t.Kind, WithLogger(log))
	switch t.Kind {
	case Log:
		if min <= 0 {
			log.WithField("min", min).Warn("log ticks need a positive range")
			return nil
		}
		base := t.Base
		if base == 0 {
			base = 10
		}
		a.SetRange(Float(logBase(base, min)), Float(logBase(base, max)), base)
	case Time:
		a.SetRange(Float(min*1000), Float(max*1000), t.Timezone)
	case Nanotime:
		a.SetRange(DecimalFromFloat(min).Mul(Float(1e9)), DecimalFromFloat(max).Mul(Float(1e9)), t.Timezone)
	case Category:
		a.SetRange(Float(min), Float(max), nil)
		values := make([]Value, len(t.Categories))
		for i := range values {
			values[i] = Float(i)
		}
		a.SetCategoryAxis(t.Categories, values)
	default:
		a.SetRange(Float(min), Float(max), nil)
	}
	a.SetGridlines(0, 1, t.NSuggestedTicks, 0, 0)

	labels := a.GridlineLabels()
	var ticks []plot.Tick
	for i, pct := range a.Gridlines() {
		v := a.ValueAt(pct).Float64()
		switch t.Kind {
		case Log:
			v = math.Pow(a.Base(), v)
		case Time:
			v = math.Round(v) / 1000
		case Nanotime:
			v /= 1e9
		case Linear:
			v = round(v, a.Fixed())
		}
		tick := plot.Tick{Value: v}
		if i < len(labels) {
			tick.Label = labels[i]
		}
		ticks = append(ticks, tick)
	}

	// gonum has no axis subtitle, so the shared date goes on the first tick.
	if t.Kind.IsTime() && len(ticks) > 0 {
		if common := a.LabelWithCommon(); common != "" {
			ticks[0].Label = joinNonEmpty(common, ticks[0].Label)
		}
	}

	if t.Kind == Linear {
		ticks = append(ticks, minorTicks(ticks, a.Step().Float64(), min, max)...)
	}
	return ticks
}

// minorTicks returns unlabelled ticks between the major ones: fifths of a
// 2.5 step, halves otherwise.
func minorTicks(major []plot.Tick, step, min, max float64) []plot.Tick {
	if step <= 0 || math.IsInf(step, 0) {
		return nil
	}
	delta := step / 2
	if m := step / math.Pow10(int(math.Floor(math.Log10(step)))); math.Abs(m-2.5) < 1e-9 {
		delta = step / 5
	}

	var ticks []plot.Tick
	for val := math.Floor(min/delta) * delta; val <= max; val += delta {
		if val < min {
			continue
		}
		found := false
		for _, t := range major {
			if math.Abs(t.Value-val) < delta*1e-6 {
				found = true
				break
			}
		}
		if !found {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks
}

func logBase(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}

	if x == 0 {
		return 0
	}

	return x / pow
}
