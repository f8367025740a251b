package ltime

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// TimeOfDay is a wall-clock time without a date, interpreted in the location
// of the instant it is resolved against.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
		}
	}
	return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeFormat, "expected HH:MM or HH:MM:SS, got %q", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Until returns the forward duration from now to the next occurrence of t.
// A time already passed today rolls over by 24 hours.
func (t TimeOfDay) Until(now time.Time) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, t.Second, 0, now.Location())
	if target.Before(now) {
		target = target.Add(24 * time.Hour)
	}
	return target.Sub(now)
}

// ResolveTimeOfDay parses s and resolves it against now.
func ResolveTimeOfDay(s string, now time.Time) (time.Duration, error) {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	return t.Until(now), nil
}
