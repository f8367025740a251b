package progress

import "time"

// Cadence decides how long the reporter sleeps before its next update, given
// the time still remaining. The reporter clamps the result to the remaining
// time, so implementations need not.
type Cadence interface {
	Slice(remaining time.Duration) time.Duration
}

// Fixed updates every period.
type Fixed time.Duration

func (f Fixed) Slice(remaining time.Duration) time.Duration {
	return min(time.Duration(f), remaining)
}

type threshold struct {
	upTo   time.Duration
	period time.Duration
}

// Remaining time at or below upTo updates every period. Boundaries belong to
// the lower bucket.
var adaptiveThresholds = []threshold{
	{20 * time.Second, time.Second},
	{60 * time.Second, 5 * time.Second},
	{300 * time.Second, 10 * time.Second},
	{600 * time.Second, 15 * time.Second},
}

const adaptiveCeilingPeriod = time.Minute

// AdaptivePeriod returns the update period for the given remaining time:
// short waits tick every second, long ones every minute.
func AdaptivePeriod(remaining time.Duration) time.Duration {
	for _, t := range adaptiveThresholds {
		if remaining <= t.upTo {
			return t.period
		}
	}
	return adaptiveCeilingPeriod
}

// nextThresholdBelow returns the largest threshold strictly below remaining,
// or false when remaining is already in the finest bucket.
func nextThresholdBelow(remaining time.Duration) (time.Duration, bool) {
	var below time.Duration
	found := false
	for _, t := range adaptiveThresholds {
		if t.upTo < remaining {
			below, found = t.upTo, true
		}
	}
	return below, found
}

type adaptive struct{}

// Adaptive coarsens the update period as the remaining time grows. Each slice
// is the smallest of the current period, the distance to the next multiple
// of that period, and the distance down to the next threshold, so ticks land
// on round numbers and no bucket change is skipped.
func Adaptive() Cadence {
	return adaptive{}
}

func (adaptive) Slice(remaining time.Duration) time.Duration {
	period := AdaptivePeriod(remaining)
	slice := period

	if offset := remaining % period; offset > 0 {
		slice = min(slice, offset)
	}
	if below, ok := nextThresholdBelow(remaining); ok {
		slice = min(slice, remaining-below)
	}
	return slice
}

var (
	_ Cadence = Fixed(0)
	_ Cadence = adaptive{}
)
