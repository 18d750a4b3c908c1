package plotaxis

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// Label patterns for time axes, from the finest label span to the coarsest.
const (
	secondPattern = ".%L"
	minutePattern = "%M:%S.%L"
	hourPattern   = "%H:%M:%S"
	dayPattern    = "%Y %b %d, %H:%M"
	monthPattern  = "%Y %b %d"
	yearPattern   = "%Y %b"
	yearsPattern  = "%Y"
)

// calcLabels renders one label per line for a label span of span and
// returns the labels together with the fragment factored out of all of them.
func (a *Axis) calcLabels(lines []float64, span Value) ([]string, string) {
	if a.kind == Category {
		return a.categoryLabels(lines), ""
	}

	labels := a.formatLines(lines, span)
	if !a.kind.IsTime() {
		return labels, ""
	}

	buckets := a.units.buckets(a.kind)
	for i := 0; i < len(buckets) && hasDuplicates(labels); i++ {
		finer, ok := a.finerSpan(span, buckets)
		if !ok {
			break
		}
		span = finer
		labels = a.formatLines(lines, span)
	}

	if span.Cmp(a.value(a.units.hour)) >= 0 {
		return commonPrefix(labels)
	}
	return labels, ""
}

// finerSpan returns a span just inside the next finer label bucket, or false
// if span already falls in the finest one.
func (a *Axis) finerSpan(span Value, buckets []float64) (Value, bool) {
	if span.Cmp(a.value(buckets[0])) <= 0 {
		return span, false
	}
	next := buckets[len(buckets)-1]
	for i := 1; i < len(buckets); i++ {
		if span.Cmp(a.value(buckets[i])) <= 0 {
			next = buckets[i-1]
			break
		}
	}
	return a.value(next).Sub(a.value(1)), true
}

func (a *Axis) formatLines(lines []float64, span Value) []string {
	labels := make([]string, len(lines))
	for i, pct := range lines {
		labels[i] = a.tickString(pct, span)
	}
	return labels
}

func (a *Axis) tickString(pct float64, span Value) string {
	if !a.kind.IsTime() {
		v := a.ValueAt(pct).Float64()
		if a.kind == Log {
			v = math.Pow(a.base, v)
		}
		return a.printer.Sprintf("%.*f", a.fixed, v)
	}

	v := a.ValueAt(pct)
	var t time.Time
	var nanos string
	var offset bool
	if a.kind == Time {
		t = msTime(math.Ceil(v.Float64()*1000) / 1000)
	} else {
		t, nanos = a.splitNanos(v)
		// Within the first second after the epoch, values are offsets, not dates.
		offset = v.Cmp(a.value(0)) >= 0 && v.Cmp(a.value(a.units.second)) < 0
	}

	within := func(limit float64) bool { return span.Cmp(a.value(limit)) <= 0 }
	switch {
	case a.kind == Time && within(a.units.second):
		return a.format(t, secondPattern)
	case a.kind == Time && within(a.units.minute):
		return a.format(t, minutePattern)
	case within(a.units.hour):
		if a.kind == Time {
			return a.format(t, hourPattern)
		}
		if offset {
			return "." + nanos
		}
		return a.format(t, hourPattern) + "." + nanos
	case within(a.units.day):
		return a.format(t, dayPattern)
	case within(a.units.month):
		return a.format(t, monthPattern)
	case within(a.units.year):
		return a.format(t, yearPattern)
	}
	return a.format(t, yearsPattern)
}

// splitNanos splits a nanotime value into its whole second and the
// zero-padded nanoseconds within that second. The remainder is floored, so
// instants before the epoch count forward from the previous second.
func (a *Axis) splitNanos(v Value) (time.Time, string) {
	v = v.Round()
	second := a.value(a.units.second)
	rem := v.Mod(second)
	if rem.Cmp(a.value(0)) < 0 {
		rem = rem.Add(second)
	}
	sec := v.Sub(rem).Div(second)
	ns := int64(rem.Float64())
	return time.Unix(int64(sec.Float64()), ns).UTC(), fmt.Sprintf("%09d", ns)
}

func (a *Axis) format(t time.Time, pattern string) string {
	return a.cal.Format(t, a.timezone, pattern)
}

// categoryLabels returns the names of the categories between the first and
// last line, in ascending percent order.
func (a *Axis) categoryLabels(lines []float64) []string {
	if len(lines) == 0 {
		return nil
	}
	lo, hi := slices.Min(lines), slices.Max(lines)
	var labels []string
	for _, c := range a.categories {
		if c.pct >= lo && c.pct <= hi {
			labels = append(labels, c.name)
		}
	}
	return labels
}

func hasDuplicates(labels []string) bool {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			return true
		}
		seen[l] = struct{}{}
	}
	return false
}

// commonPrefix finds the longest run of leading space-separated tokens shared
// by all labels. If it has at least two characters it is removed from every
// label and returned without its trailing comma.
func commonPrefix(labels []string) ([]string, string) {
	if len(labels) < 2 {
		return labels, ""
	}

	tokens := strings.Split(labels[0], " ")
	n := 0
	for n < len(tokens) && sharePrefix(labels[1:], strings.Join(tokens[:n+1], " ")) {
		n++
	}
	common := strings.Join(tokens[:n], " ")
	if len(common) < 2 {
		return labels, ""
	}

	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = strings.TrimSpace(strings.TrimPrefix(l, common))
	}
	return out, strings.TrimSpace(strings.TrimSuffix(common, ","))
}

// sharePrefix reports whether every label starts with the whole tokens of
// prefix.
func sharePrefix(labels []string, prefix string) bool {
	for _, l := range labels {
		if !strings.HasPrefix(l, prefix) {
			return false
		}
		if len(l) > len(prefix) && l[len(prefix)] != ' ' {
			return false
		}
	}
	return true
}
