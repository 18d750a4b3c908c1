// Package plotaxis computes gridline positions and labels for a chart axis.
//
// An Axis maps data values to percentages of its range and back, picks a
// tick step close to a requested tick count from a ladder of nice numeric or
// calendar intervals, and renders labels whose precision follows the visible
// span. Axes are not safe for concurrent use.
package plotaxis

import (
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Axis holds the range, visible window and current gridlines of one axis.
type Axis struct {
	kind     Kind
	base     float64
	timezone string
	label    string

	valL, valR, span Value
	pctL, pctR       float64
	pctSpan          float64

	step             Value
	fixed            int
	marginL, marginR Value

	gridlines       []float64
	gridlineLabels  []string
	labelWithCommon string

	categories []category

	units    units
	numSteps ladder
	calSteps ladder
	fixs     []int

	log     logrus.FieldLogger
	cal     Calendar
	printer *message.Printer
}

// category is one category tick; Axis keeps them sorted by pct.
type category struct {
	pct  float64
	name string
}

// Option configures an Axis.
type Option func(*Axis)

// WithLogger sets the logger receiving diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Axis) { a.log = log }
}

// WithCalendar sets the calendar used to snap and format time ticks.
func WithCalendar(cal Calendar) Option {
	return func(a *Axis) { a.cal = cal }
}

// WithLanguage sets the language used for number grouping.
func WithLanguage(tag language.Tag) Option {
	return func(a *Axis) { a.printer = message.NewPrinter(tag) }
}

// New returns an axis of the given kind spanning [0, 1].
func New(kind Kind, opts ...Option) *Axis {
	a := &Axis{
		kind:     kind,
		base:     10,
		timezone: "UTC",
		pctR:     1,
		pctSpan:  1,
		units:    newUnits(kind),
		numSteps: numericLadder(),
	}
	a.calSteps = calendarLadder(a.units)
	floor := 0
	if kind == Log {
		floor = 1
	}
	a.fixs = fixedDecimals(floor)

	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	a.log = a.log.WithFields(logrus.Fields{"component": "plotaxis", "kind": kind.String()})
	if a.cal == nil {
		a.cal = NewZoneCalendar(a.log)
	}
	if a.printer == nil {
		a.printer = message.NewPrinter(language.English)
	}

	a.valL, a.valR, a.span = a.value(0), a.value(1), a.value(1)
	a.step = a.value(1)
	a.marginL, a.marginR = a.value(0), a.value(0)
	return a
}

// value returns f in the axis domain.
func (a *Axis) value(f float64) Value {
	if a.kind == Nanotime {
		return DecimalFromFloat(f)
	}
	return Float(f)
}

// coerce converts v into the axis domain.
func (a *Axis) coerce(v Value) Value {
	if a.kind == Nanotime {
		return toDecimal(v)
	}
	return Float(v.Float64())
}

// SetLabel sets the axis title.
func (a *Axis) SetLabel(label string) { a.label = label }

// SetRange sets the data bounds of the axis. A nil bound keeps its previous
// value. For log axes param is the logarithm base (float64 or int); for time
// and nanotime axes it is an IANA time zone name. A nil param keeps the
// current setting.
func (a *Axis) SetRange(left, right Value, param any) {
	if left != nil {
		a.valL = a.coerce(left)
	}
	if right != nil {
		a.valR = a.coerce(right)
	}

	switch {
	case a.kind == Log:
		switch p := param.(type) {
		case nil:
			a.SetBase(a.base)
		case float64:
			a.SetBase(p)
		case int:
			a.SetBase(float64(p))
		default:
			a.log.WithField("param", p).Warn("log base must be a number")
		}
	case a.kind.IsTime():
		switch p := param.(type) {
		case nil:
		case string:
			a.SetTimezone(p)
		default:
			a.log.WithField("param", p).Warn("timezone must be a string")
		}
	}

	a.span = a.valR.Sub(a.valL)
}

// SetBase sets the logarithm base. Bases <= 1 reset it to 10.
func (a *Axis) SetBase(base float64) {
	a.base = base
	if !(a.base > 1) {
		a.log.WithField("base", base).Warn("cannot set base to <= 1")
		a.base = 10
	}
}

// SetTimezone sets the zone used to snap and format time ticks.
func (a *Axis) SetTimezone(tz string) {
	if tz != "" {
		a.timezone = tz
	}
}

// SetCategoryAxis replaces the category ticks: names[i] is shown at the
// percent of values[i]. A later category at the same percent replaces an
// earlier one.
func (a *Axis) SetCategoryAxis(names []string, values []Value) {
	n := len(values)
	if len(names) != n {
		a.log.WithFields(logrus.Fields{"names": len(names), "values": len(values)}).
			Warn("category names and values differ in length")
		n = min(n, len(names))
	}
	a.categories = a.categories[:0]
	for i := 0; i < n; i++ {
		c := category{pct: a.PercentOf(values[i]), name: names[i]}
		j := sort.Search(len(a.categories), func(j int) bool { return a.categories[j].pct >= c.pct })
		if j < len(a.categories) && a.categories[j].pct == c.pct {
			a.categories[j] = c
			continue
		}
		a.categories = append(a.categories, category{})
		copy(a.categories[j+1:], a.categories[j:])
		a.categories[j] = c
	}
}

func (a *Axis) Kind() Kind       { return a.kind }
func (a *Axis) Base() float64    { return a.base }
func (a *Axis) Timezone() string { return a.timezone }
func (a *Axis) Label() string    { return a.label }
func (a *Axis) Span() Value      { return a.span }
func (a *Axis) Step() Value      { return a.step }
func (a *Axis) Fixed() int       { return a.fixed }

// Range returns the data bounds of the axis.
func (a *Axis) Range() (left, right Value) { return a.valL, a.valR }

// Window returns the percent window of the last SetGridlines call.
func (a *Axis) Window() (left, right float64) { return a.pctL, a.pctR }

// Gridlines returns the gridline percents of the last SetGridlines call.
func (a *Axis) Gridlines() []float64 {
	return append([]float64(nil), a.gridlines...)
}

// GridlineLabels returns one label per gridline.
func (a *Axis) GridlineLabels() []string {
	return append([]string(nil), a.gridlineLabels...)
}

// LabelWithCommon returns the axis title followed by the label fragment
// shared by all gridline labels, if any.
func (a *Axis) LabelWithCommon() string { return a.labelWithCommon }
