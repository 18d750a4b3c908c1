package plotaxis

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Value is a data-space coordinate or a duration along an axis.
//
// There are two domains: Float for linear, log, time and category axes, and
// Decimal for nanotime axes. Binary operations take the receiver's domain; an
// operand from the other domain is converted first.
type Value interface {
	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value
	Div(Value) Value
	Mod(Value) Value
	Ceil() Value
	Round() Value
	Cmp(Value) int
	Float64() float64
	String() string
}

// Float is a double precision Value.
type Float float64

func (f Float) Add(o Value) Value { return f + Float(o.Float64()) }
func (f Float) Sub(o Value) Value { return f - Float(o.Float64()) }
func (f Float) Mul(o Value) Value { return f * Float(o.Float64()) }
func (f Float) Div(o Value) Value { return f / Float(o.Float64()) }
func (f Float) Mod(o Value) Value { return Float(math.Mod(float64(f), o.Float64())) }
func (f Float) Ceil() Value       { return Float(math.Ceil(float64(f))) }
func (f Float) Round() Value      { return Float(math.Round(float64(f))) }

func (f Float) Cmp(o Value) int {
	switch g := o.Float64(); {
	case float64(f) < g:
		return -1
	case float64(f) > g:
		return 1
	}
	return 0
}

func (f Float) Float64() float64 { return float64(f) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

// Decimal is an arbitrary precision Value backed by shopspring/decimal.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal wraps d.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{d: d} }

// DecimalFromInt returns the Decimal for an integer, typically a
// nanosecond timestamp.
func DecimalFromInt(n int64) Decimal { return Decimal{d: decimal.NewFromInt(n)} }

// DecimalFromFloat returns the Decimal for the shortest decimal
// representation of f.
func DecimalFromFloat(f float64) Decimal { return Decimal{d: decimal.NewFromFloat(f)} }

// ParseDecimal parses a decimal string such as "1577872800000000000".
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "parse decimal %q", s)
	}
	return Decimal{d: d}, nil
}

// Big returns the underlying decimal.
func (d Decimal) Big() decimal.Decimal { return d.d }

func (d Decimal) Add(o Value) Value { return Decimal{d: d.d.Add(toDecimal(o).d)} }
func (d Decimal) Sub(o Value) Value { return Decimal{d: d.d.Sub(toDecimal(o).d)} }
func (d Decimal) Mul(o Value) Value { return Decimal{d: d.d.Mul(toDecimal(o).d)} }
func (d Decimal) Div(o Value) Value { return Decimal{d: d.d.Div(toDecimal(o).d)} }
func (d Decimal) Mod(o Value) Value { return Decimal{d: d.d.Mod(toDecimal(o).d)} }
func (d Decimal) Ceil() Value       { return Decimal{d: d.d.Ceil()} }
func (d Decimal) Round() Value      { return Decimal{d: d.d.Round(0)} }
func (d Decimal) Cmp(o Value) int   { return d.d.Cmp(toDecimal(o).d) }

// Float64 narrows d to the nearest float64.
func (d Decimal) Float64() float64 {
	f, _ := d.d.Float64()
	return f
}

func (d Decimal) String() string { return d.d.String() }

func toDecimal(v Value) Decimal {
	if d, ok := v.(Decimal); ok {
		return d
	}
	return DecimalFromFloat(v.Float64())
}
