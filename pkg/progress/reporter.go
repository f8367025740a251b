package progress

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	ltime "github.com/dozr-cli/dozr/pkg/time"
)

// DisplayFunc receives the remaining time rounded to whole seconds. A zero
// argument marks completion and is always the final call.
type DisplayFunc func(remaining time.Duration)

type Reporter struct {
	config  *Config
	watch   ltime.Watch
	sleeper ltime.Sleeper
}

func NewReporter(cfg *Config, watch ltime.Watch, sleeper ltime.Sleeper) *Reporter {
	return &Reporter{
		config:  cfg,
		watch:   watch,
		sleeper: sleeper,
	}
}

// Run sleeps for total in slices chosen by cadence, calling display at slice
// boundaries whenever the rounded remaining time changes. Elapsed time is
// measured against the start instant on every iteration, so slices never
// accumulate drift. When ctx is cancelled Run returns its error without the
// completion call.
func (r *Reporter) Run(ctx context.Context, total time.Duration, cadence Cadence, display DisplayFunc) error {
	start := r.watch.Now()
	last := time.Duration(-1)
	slices := 0

	for {
		remaining := total - r.watch.Now().Sub(start)
		if remaining <= 0 {
			log.Debugf("progress reporter finished %s wait in %d slices", total, slices)
			display(0)
			return nil
		}

		if rounded := ltime.RoundSeconds(remaining); rounded > 0 && rounded != last {
			display(rounded)
			last = rounded
		}

		slice := max(min(cadence.Slice(remaining), remaining), r.config.MinSlice)
		if err := r.sleeper.Sleep(ctx, slice); err != nil {
			log.Debugf("progress reporter stopped with %s remaining: %s", remaining, err)
			return err
		}
		slices++
	}
}
