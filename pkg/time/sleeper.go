package ltime

import (
	"context"
	"sync"
	"time"
)

// Sleeper blocks for a duration. Implementations return early with the
// context error when ctx is cancelled.
type Sleeper interface {
	Sleep(ctx context.Context, duration time.Duration) error
}

type WallSleeper struct{}

func (WallSleeper) Sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Sleeper = WallSleeper{}

func NewWallSleeper() WallSleeper {
	return WallSleeper{}
}

// TestingSleeper never blocks. It records every requested slice and, when a
// watch is attached, advances it by the slept duration so that code reading
// the watch observes time passing.
type TestingSleeper struct {
	Watch  *TestingWatch
	Slept  []time.Duration
	Cancel func(slept []time.Duration) bool
	lock   sync.Mutex
}

func (s *TestingSleeper) Sleep(ctx context.Context, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Slept = append(s.Slept, duration)
	if s.Watch != nil {
		s.Watch.Advance(duration)
	}
	if s.Cancel != nil && s.Cancel(s.Slept) {
		return context.Canceled
	}
	return nil
}

// Total is the sum of all recorded slices.
func (s *TestingSleeper) Total() time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()
	var total time.Duration
	for _, d := range s.Slept {
		total += d
	}
	return total
}

var _ Sleeper = &TestingSleeper{}

func NewTestingSleeper(watch *TestingWatch) *TestingSleeper {
	return &TestingSleeper{Watch: watch}
}
