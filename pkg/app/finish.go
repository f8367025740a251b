package app

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrInterrupted = errors.New("interrupted")

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

type CloseFunc func() error

func (instance *Instance) AddCloseFunc(fn CloseFunc) {
	instance.AddCloser(&closeWrapper{fn: fn})
}

type closeWrapper struct {
	fn CloseFunc
}

func (w *closeWrapper) Close() error {
	return w.fn()
}

func (instance *Instance) AddCloser(closer io.Closer) {
	instance.closers = append(instance.closers, closer)
}

// Run calls fn next to a signal watcher. A signal cancels the context handed
// to fn and Run returns ErrInterrupted. Closers run once fn has returned,
// whatever the outcome.
func (instance *Instance) Run(fn func(ctx context.Context) error) error {
	sigs := make(chan os.Signal, 1)
	if len(instance.signals) > 0 {
		signal.Notify(sigs, instance.signals...)
		defer signal.Stop(sigs)
	}

	group, ctx := errgroup.WithContext(instance.ctx)
	done := make(chan struct{})

	group.Go(func() error {
		select {
		case sig := <-sigs:
			log.Debugf("received %s, stopping", sig)
			return errors.Wrapf(ErrInterrupted, "received %s", sig)
		case <-done:
			return nil
		case <-ctx.Done():
			return nil
		}
	})
	group.Go(func() error {
		defer close(done)
		return fn(ctx)
	})

	err := group.Wait()
	if closeErr := instance.Close(); closeErr != nil {
		if err == nil {
			return closeErr
		}
		log.Warnf("failed to close after error: %s", closeErr)
	}
	return err
}

// Close cancels the instance context and runs every closer in reverse order
// of registration, collecting their failures.
func (instance *Instance) Close() error {
	instance.cancel()

	var result *multierror.Error
	for i := len(instance.closers) - 1; i >= 0; i-- {
		if err := instance.closers[i].Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	instance.closers = nil
	return result.ErrorOrNil()
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInterrupted):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
