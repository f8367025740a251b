package main

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dozr-cli/dozr/internal/config"
	"github.com/dozr-cli/dozr/pkg/app"
	ltime "github.com/dozr-cli/dozr/pkg/time"
)

func TestRunVerboseZeroWait(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"-v", "duration", "0s"}, stdout, stderr)
	assert.Equal(t, app.ExitOK, code)
	assert.Contains(t, stderr.String(), "Waiting for 0s (base: 0s, jitter: 0s)")
	assert.Contains(t, stderr.String(), "Wait complete.")
	assert.Empty(t, stdout.String())
}

func TestRunProbabilisticSkip(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"-v", "-p", "0", "--seed", "3", "duration", "1h"}, stdout, stderr)
	assert.Equal(t, app.ExitOK, code)
	assert.Contains(t, stderr.String(), "Probabilistic wait: Skipping sleep (probability: 0, roll: ")
}

func TestRunFailure(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"pareto", "0", "2"}, stdout, stderr)
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr.String(), "error: invalid distribution parameters: pareto")
}

func TestRunBadEnvironment(t *testing.T) {
	t.Setenv("DOZR_MAX_SLEEP", "-1s")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"duration", "0s"}, stdout, stderr)
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr.String(), "DOZR_MAX_SLEEP")
}

func TestRunBadLogLevel(t *testing.T) {
	t.Setenv("DOZR_LOG_LEVEL", "chatty")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"duration", "0s"}, stdout, stderr)
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr.String(), "DOZR_LOG_LEVEL")
}

func TestExecuteLogsWaitEnd(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(level)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	opts := newOptions(&config.Config{LogLevel: "debug"}, ltime.NewWallWatch(), stdout, stderr)
	cmd := newRootCmd(opts)
	cmd.SetArgs([]string{"duration", "0s"})
	require.NoError(t, cmd.Execute())

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	require.NotEmpty(t, messages)
	assert.Contains(t, messages[len(messages)-1], "fixed wait ended after")
}
