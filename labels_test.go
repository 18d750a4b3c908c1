package plotaxis

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestCommonPrefix(t *testing.T) {
	labels, common := commonPrefix([]string{
		"2020 Jan 01, 10:00",
		"2020 Jan 01, 11:00",
		"2020 Jan 01, 12:00",
	})
	assert.Equal(t, []string{"10:00", "11:00", "12:00"}, labels)
	assert.Equal(t, "2020 Jan 01", common)
}

func TestCommonPrefixWholeTokens(t *testing.T) {
	// "2020 Jan 1" is not a prefix of "2020 Jan 15".
	labels, common := commonPrefix([]string{"2020 Jan 1", "2020 Jan 15"})
	assert.Equal(t, []string{"1", "15"}, labels)
	assert.Equal(t, "2020 Jan", common)
}

func TestCommonPrefixTooShort(t *testing.T) {
	in := []string{"1 Jan", "1 Feb"}
	labels, common := commonPrefix(in)
	assert.Equal(t, in, labels)
	assert.Empty(t, common)

	labels, common = commonPrefix([]string{"2020 Jan"})
	assert.Equal(t, []string{"2020 Jan"}, labels)
	assert.Empty(t, common)
}

func TestHasDuplicates(t *testing.T) {
	assert.False(t, hasDuplicates(nil))
	assert.False(t, hasDuplicates([]string{"a", "b"}))
	assert.True(t, hasDuplicates([]string{"a", "b", "a"}))
}

func TestFinerSpan(t *testing.T) {
	log, _ := test.NewNullLogger()
	a := New(Time, WithLogger(log))
	u := a.units
	buckets := u.buckets(Time)

	span, ok := a.finerSpan(Float(u.day), buckets)
	assert.True(t, ok)
	assert.Equal(t, u.hour-1, span.Float64())

	span, ok = a.finerSpan(Float(3*u.year), buckets)
	assert.True(t, ok)
	assert.Equal(t, u.year-1, span.Float64())

	_, ok = a.finerSpan(Float(u.second), buckets)
	assert.False(t, ok)
}

func TestFinerSpanTerminates(t *testing.T) {
	for _, kind := range []Kind{Time, Nanotime} {
		log, _ := test.NewNullLogger()
		a := New(kind, WithLogger(log))
		buckets := a.units.buckets(kind)

		span := a.value(10 * a.units.year)
		steps := 0
		for {
			next, ok := a.finerSpan(span, buckets)
			if !ok {
				break
			}
			assert.Equal(t, -1, next.Cmp(span), "%v: span must shrink", kind)
			span = next
			steps++
		}
		assert.LessOrEqual(t, steps, len(buckets), "%v", kind)
		assert.LessOrEqual(t, span.Cmp(a.value(buckets[0])), 0, "%v", kind)
	}
}
