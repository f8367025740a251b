package app

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsWorkResult(t *testing.T) {
	instance := newInstance(syscall.SIGUSR1)
	var order []string
	instance.AddCloseFunc(func() error { order = append(order, "first"); return nil })
	instance.AddCloseFunc(func() error { order = append(order, "second"); return nil })

	require.NoError(t, instance.Run(func(ctx context.Context) error { return nil }))
	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, instance.Context().Err())

	failing := errors.New("boom")
	err := newInstance(syscall.SIGUSR1).Run(func(ctx context.Context) error { return failing })
	assert.ErrorIs(t, err, failing)
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestRunInterrupted(t *testing.T) {
	instance := newInstance(syscall.SIGUSR1)

	err := instance.Run(func(ctx context.Context) error {
		if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("signal not delivered")
		}
	})
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, ExitInterrupted, ExitCode(err))
}

func TestCloseCollectsErrors(t *testing.T) {
	instance := newInstance()
	instance.AddCloseFunc(func() error { return errors.New("first") })
	instance.AddCloseFunc(func() error { return errors.New("second") })

	err := instance.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
	assert.NoError(t, instance.Close())
}

func TestRunReportsCloseFailure(t *testing.T) {
	instance := newInstance(syscall.SIGUSR1)
	instance.AddCloseFunc(func() error { return errors.New("flush failed") })

	err := instance.Run(func(ctx context.Context) error { return nil })
	assert.ErrorContains(t, err, "flush failed")
	assert.Equal(t, ExitOK, ExitCode(nil))
}
