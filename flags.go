package plotaxis

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// FloatArrayFlags collects a repeated float flag. It satisfies both
// flag.Value and pflag.Value. The first Set replaces the default.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid number %q", valueStr)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

func (f *FloatArrayFlags) Type() string {
	return "floats"
}

// Values returns the collected numbers as axis values.
func (f *FloatArrayFlags) Values() []Value {
	values := make([]Value, len(f.Array))
	for i, v := range f.Array {
		values[i] = Float(v)
	}
	return values
}
