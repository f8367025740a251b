package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dozr-cli/dozr/internal/config"
	"github.com/dozr-cli/dozr/pkg/distribution"
	ltime "github.com/dozr-cli/dozr/pkg/time"
	"github.com/dozr-cli/dozr/pkg/wait"
)

type harness struct {
	opts      *options
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	condition *wait.Condition
}

func newHarness(now time.Time) *harness {
	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.opts = newOptions(&config.Config{LogLevel: "warning"}, ltime.NewTestingWatch(now), h.stdout, h.stderr)
	h.opts.waitFn = func(_ *cobra.Command, condition wait.Condition) error {
		h.condition = &condition
		return nil
	}
	return h
}

func (h *harness) run(args ...string) error {
	cmd := newRootCmd(h.opts)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestWaitCommandPolicies(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	tests := []struct {
		args []string
		want wait.Policy
	}{
		{[]string{"duration", "30s"}, wait.Fixed{Base: 30 * time.Second}},
		{[]string{"d", "1h 30m"}, wait.Fixed{Base: 90 * time.Minute}},
		{[]string{"-j", "2s", "d", "1.5"}, wait.Fixed{Base: 1500 * time.Millisecond, Jitter: 2 * time.Second}},
		{[]string{"normal", "1m", "10"}, wait.Sampled{Distribution: distribution.Normal{Mean: time.Minute, StdDev: 10}}},
		{[]string{"e", "0.5"}, wait.Sampled{Distribution: distribution.Exponential{Lambda: 0.5}}},
		{[]string{"ln", "2s", "0.5"}, wait.Sampled{Distribution: distribution.LogNormal{Mean: 2 * time.Second, StdDev: 0.5}}},
		{[]string{"ln", "--", "-0.5", "0.25"}, wait.Sampled{Distribution: distribution.LogNormal{Mean: -500 * time.Millisecond, StdDev: 0.25}}},
		{[]string{"log-normal", "--", "-2s", "1"}, wait.Sampled{Distribution: distribution.LogNormal{Mean: -2 * time.Second, StdDev: 1}}},
		{[]string{"par", "1", "3"}, wait.Sampled{Distribution: distribution.Pareto{Scale: 1, Shape: 3}}},
		{[]string{"w", "1.5", "10"}, wait.Sampled{Distribution: distribution.Weibull{Shape: 1.5, Scale: 10}}},
		{[]string{"u", "5s", "15s"}, wait.Sampled{Distribution: distribution.Uniform{Min: 5 * time.Second, Max: 15 * time.Second}}},
		{[]string{"t", "1", "10", "3"}, wait.Sampled{Distribution: distribution.Triangular{Min: 1, Max: 10, Mode: 3}}},
		{[]string{"gamma", "2", "1.5", "--jitter", "100ms"}, wait.Sampled{Distribution: distribution.Gamma{Shape: 2, Scale: 1.5}, Jitter: 100 * time.Millisecond}},
		{[]string{"align", "5m"}, wait.Align{Interval: 5 * time.Minute}},
		{[]string{"at", "12:00:05"}, wait.UntilClockTime{Target: ltime.TimeOfDay{Hour: 12, Second: 5}, Duration: 5 * time.Second}},
		{[]string{"-p", "0.25", "d", "10s"}, wait.Probabilistic{Probability: 0.25, Inner: wait.Fixed{Base: 10 * time.Second}}},
	}
	for _, tc := range tests {
		h := newHarness(now)
		require.NoError(t, h.run(tc.args...), "%v", tc.args)
		require.NotNil(t, h.condition, "%v", tc.args)
		assert.Equal(t, tc.want, h.condition.Policy, "%v", tc.args)
		assert.Equal(t, wait.Silent(), h.condition.Verbose, "%v", tc.args)
	}
}

func TestVerboseFlag(t *testing.T) {
	tests := []struct {
		args []string
		want wait.Verbose
	}{
		{[]string{"-v", "d", "10s"}, wait.AdaptiveVerbose()},
		{[]string{"d", "10s", "--verbose"}, wait.AdaptiveVerbose()},
		{[]string{"-v=2s", "d", "10s"}, wait.FixedVerbose(2 * time.Second)},
		{[]string{"d", "10s", "-v", "5s"}, wait.FixedVerbose(5 * time.Second)},
		{[]string{"normal", "1m", "10", "-v", "500ms"}, wait.FixedVerbose(500 * time.Millisecond)},
		{[]string{"at", "13:00", "-v", "1m"}, wait.FixedVerbose(time.Minute)},
	}
	for _, tc := range tests {
		h := newHarness(time.Unix(0, 0))
		require.NoError(t, h.run(tc.args...), "%v", tc.args)
		assert.Equal(t, tc.want, h.condition.Verbose, "%v", tc.args)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := [][]string{
		{"d"},
		{"d", "ten"},
		{"d", "-3s"},
		{"d", "10s", "5s"},
		{"-v=2s", "d", "10s", "5s"},
		{"-v", "d", "10s", "0s"},
		{"-p", "1.5", "d", "10s"},
		{"-p", "0.5", "align", "10s"},
		{"-j", "1s", "at", "12:00"},
		{"at", "25:00"},
		{"normal", "1m", "x"},
		{"normal", "--", "-1s", "1"},
		{"ln", "--", "-inf", "1"},
		{"t", "1", "2"},
	}
	for _, args := range tests {
		h := newHarness(time.Unix(0, 0))
		assert.Error(t, h.run(args...), "%v", args)
		assert.Nil(t, h.condition, "%v", args)
	}
}

func TestProbabilityValidation(t *testing.T) {
	h := newHarness(time.Unix(0, 0))
	assert.ErrorIs(t, h.run("-p", "-0.5", "d", "1s"), wait.ErrInvalidProbability)
}

func TestSampleText(t *testing.T) {
	h := newHarness(time.Unix(0, 0))
	require.NoError(t, h.run("sample", "u", "1s", "2s", "--count", "3", "--seed", "9"))

	lines := bytes.Split(bytes.TrimSpace(h.stdout.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "uniform(min=1s, max=2s)", string(lines[0]))
	assert.Nil(t, h.condition)
}

func TestSampleIsReproducible(t *testing.T) {
	first := newHarness(time.Unix(0, 0))
	require.NoError(t, first.run("sample", "exponential", "0.5", "-c", "5", "--seed", "42", "-o", "json"))
	second := newHarness(time.Unix(0, 0))
	require.NoError(t, second.run("sample", "exponential", "0.5", "-c", "5", "--seed", "42", "-o", "json"))
	assert.Equal(t, first.stdout.String(), second.stdout.String())

	var report sampleReport
	require.NoError(t, json.Unmarshal(first.stdout.Bytes(), &report))
	assert.Len(t, report.Samples, 5)
	assert.Nil(t, report.Summary)
}

func TestSampleSummaryYAML(t *testing.T) {
	h := newHarness(time.Unix(0, 0))
	require.NoError(t, h.run("sample", "gamma", "2", "1", "--count", "1000", "--summary", "--output", "yaml", "--seed", "1"))

	var report sampleReport
	require.NoError(t, yaml.Unmarshal(h.stdout.Bytes(), &report))
	require.NotNil(t, report.Summary)
	assert.Equal(t, 1000, report.Summary.Count)
	assert.InDelta(t, 2.0, report.Summary.Mean, 0.3)
	assert.Empty(t, report.Samples)
}

func TestSampleErrors(t *testing.T) {
	for _, args := range [][]string{
		{"sample", "pareto", "0", "1"},
		{"sample", "normal", "1s", "1", "--count", "0"},
		{"sample", "normal", "1s", "1", "--output", "xml"},
		{"-j", "1s", "sample", "normal", "1s", "1"},
		{"sample", "exponential", "0.5", "-p", "0.5"},
	} {
		h := newHarness(time.Unix(0, 0))
		assert.Error(t, h.run(args...), "%v", args)
		assert.Empty(t, h.stdout.String(), "%v", args)
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(time.Unix(0, 0))
	require.NoError(t, h.run("version"))
	assert.Contains(t, h.stdout.String(), "dozr dev")
}
