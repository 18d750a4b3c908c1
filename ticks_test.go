package plotaxis_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/decibelcooper/plotaxis"
)

func split(ticks []plot.Tick) (major, minor []plot.Tick) {
	for _, t := range ticks {
		if t.IsMinor() {
			minor = append(minor, t)
		} else {
			major = append(major, t)
		}
	}
	return major, minor
}

func TestTicksLinear(t *testing.T) {
	log, _ := test.NewNullLogger()
	major, minor := split(plotaxis.Ticks{NSuggestedTicks: 5, Logger: log}.Ticks(0, 100))

	require.Len(t, major, 5)
	for i, tick := range major {
		assert.Equal(t, float64(25*i), tick.Value)
	}
	assert.Equal(t, "0", major[0].Label)
	assert.Equal(t, "100", major[4].Label)

	// A 25 step is split into fifths.
	assert.Len(t, minor, 16)
	for _, tick := range minor {
		assert.NotZero(t, math.Mod(tick.Value, 25), "minor tick %v on a major one", tick.Value)
		assert.Zero(t, math.Mod(tick.Value, 5), "minor tick %v", tick.Value)
	}
}

func TestTicksDefaultCount(t *testing.T) {
	log, _ := test.NewNullLogger()
	major, _ := split(plotaxis.Ticks{Logger: log}.Ticks(0, 1))

	assert.Len(t, major, 5)
	assert.Equal(t, "0.25", major[1].Label)
	assert.Equal(t, 0.25, major[1].Value)
}

func TestTicksLog(t *testing.T) {
	log, _ := test.NewNullLogger()
	ticks := plotaxis.Ticks{Kind: plotaxis.Log, NSuggestedTicks: 3, Logger: log}.Ticks(1, 1000)

	require.Len(t, ticks, 4)
	for i, want := range []float64{1, 10, 100, 1000} {
		assert.InEpsilon(t, want, ticks[i].Value, 1e-9)
	}
	assert.Equal(t, "1,000.0", ticks[3].Label)
}

func TestTicksTime(t *testing.T) {
	log, _ := test.NewNullLogger()
	// 2020-01-01 10:00 to 12:00 UTC, in seconds.
	ticks := plotaxis.Ticks{Kind: plotaxis.Time, NSuggestedTicks: 2, Logger: log}.Ticks(1577872800, 1577880000)

	require.Len(t, ticks, 3)
	assert.Equal(t, 1577872800.0, ticks[0].Value)
	assert.Equal(t, 1577876400.0, ticks[1].Value)
	assert.Equal(t, "2020 Jan 01 10:00", ticks[0].Label)
	assert.Equal(t, "11:00", ticks[1].Label)
	assert.Equal(t, "12:00", ticks[2].Label)
}

func TestTicksCategory(t *testing.T) {
	log, _ := test.NewNullLogger()
	ticks := plotaxis.Ticks{
		Kind:            plotaxis.Category,
		NSuggestedTicks: 3,
		Categories:      []string{"low", "mid", "high"},
		Logger:          log,
	}.Ticks(0, 2)

	require.Len(t, ticks, 3)
	for i, want := range []string{"low", "mid", "high"} {
		assert.Equal(t, float64(i), ticks[i].Value)
		assert.Equal(t, want, ticks[i].Label)
	}
}

func TestTicksInvalidRange(t *testing.T) {
	log, hook := test.NewNullLogger()

	assert.Nil(t, plotaxis.Ticks{Logger: log}.Ticks(1, 1))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	assert.Nil(t, plotaxis.Ticks{Kind: plotaxis.Log, Logger: log}.Ticks(-1, 10))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
