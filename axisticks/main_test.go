package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestLinearText(t *testing.T) {
	out, err := execute(t, "--max", "100", "--count", "5")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"kind:  linear",
		"step:  25",
		"  0.0000  0",
		"  0.2500  25",
		"  0.5000  50",
		"  0.7500  75",
		"  1.0000  100",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestTimeYAML(t *testing.T) {
	out, err := execute(t,
		"--kind", "time",
		"--min", "2020-01-01T10:00:00Z",
		"--max", "2020-01-01T12:00:00Z",
		"--count", "2",
		"--label", "time",
		"--format", "yaml",
	)
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "time", r.Kind)
	assert.Equal(t, "1h0m0s", r.Step)
	assert.Equal(t, "time 2020 Jan 01", r.Label)
	require.Len(t, r.Ticks, 3)
	assert.Equal(t, "10:00", r.Ticks[0].Label)
	assert.Equal(t, "1577872800000", r.Ticks[0].Value)
	assert.Equal(t, 0.5, r.Ticks[1].Percent)
	assert.Equal(t, "12:00", r.Ticks[2].Label)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("PLOTAXIS_COUNT", "2")
	t.Setenv("PLOTAXIS_MAX", "100")

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "step:  50\n")

	// Flags win over the environment.
	out, err = execute(t, "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "step:  25\n")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`kind: nanotime
min: "1577872800000000000"
max: "1577872801000000000"
count: 4
format: yaml
`), 0o644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "250ms", r.Step)
	require.Len(t, r.Ticks, 5)
	assert.Equal(t, "10:00:00.000000000", r.Ticks[0].Label)
	assert.Equal(t, "10:00:00.250000000", r.Ticks[1].Label)
	assert.Equal(t, "1577872800250000000", r.Ticks[1].Value)
}

func TestCategory(t *testing.T) {
	out, err := execute(t,
		"--kind", "category",
		"--max", "2",
		"--category", "low,mid,high",
		"--category-value", "0,1,2",
		"--count", "3",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "  0.0000  low\n")
	assert.Contains(t, out, "  0.5000  mid\n")
	assert.Contains(t, out, "  1.0000  high\n")
}

func TestLanguage(t *testing.T) {
	out, err := execute(t, "--max", "10000", "--count", "4", "--lang", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "  0.2500  2.500\n")
}

func TestInvalidSettings(t *testing.T) {
	_, err := execute(t, "--kind", "polar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown axis kind "polar"`)

	_, err = execute(t, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)

	_, err = execute(t, "--max", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEmptyOrReversedRange(t *testing.T) {
	for _, args := range [][]string{
		{"--kind", "nanotime", "--min", "5", "--max", "5"},
		{"--min", "10", "--max", "0"},
		{"--kind", "time", "--min", "2020-01-02T00:00:00Z", "--max", "2020-01-01T00:00:00Z"},
	} {
		var out string
		var err error
		require.NotPanics(t, func() { out, err = execute(t, args...) }, "%v", args)
		require.Error(t, err, "%v", args)
		assert.Contains(t, err.Error(), "max must be greater than min", "%v", args)
		assert.Empty(t, out, "%v", args)
	}
}
