package plotaxis

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind selects value semantics and label formatting for an Axis.
type Kind int

const (
	Linear Kind = iota
	Log
	Time     // milliseconds since the Unix epoch
	Nanotime // nanoseconds since the Unix epoch, as Decimal
	Category
)

var kindNames = [...]string{
	Linear:   "linear",
	Log:      "log",
	Time:     "time",
	Nanotime: "nanotime",
	Category: "category",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsTime reports whether k formats its values as timestamps.
func (k Kind) IsTime() bool { return k == Time || k == Nanotime }

// ParseKind returns the Kind named s. The empty string is Linear.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Linear, nil
	}
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Linear, errors.Errorf("unknown axis kind %q", s)
}
