package ltime

import (
	"fmt"
	"math"
	"time"
)

const MaxDuration = time.Duration(math.MaxInt64)

// SecondsToDuration converts a sample expressed in seconds. NaN and
// non-positive values map to zero, anything at or beyond limit saturates to
// limit. A non-positive limit means the largest representable duration.
func SecondsToDuration(secs float64, limit time.Duration) time.Duration {
	if limit <= 0 {
		limit = MaxDuration
	}
	if math.IsNaN(secs) || secs <= 0 {
		return 0
	}
	nanos := secs * float64(time.Second)
	if nanos >= float64(limit) {
		return limit
	}
	return time.Duration(nanos)
}

// AddSaturating adds two non-negative durations, returning MaxDuration
// instead of wrapping on overflow. Negative inputs count as zero.
func AddSaturating(a, b time.Duration) time.Duration {
	a, b = max(a, 0), max(b, 0)
	if a > MaxDuration-b {
		return MaxDuration
	}
	return a + b
}

// RoundSeconds rounds to the nearest whole second, halves away from zero.
func RoundSeconds(d time.Duration) time.Duration {
	return d.Round(time.Second)
}

// FormatDuration renders whole seconds as "42s", "3m 5s" or "1h 2m 3s".
// Durations under a second keep millisecond precision.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	switch {
	case d > 0 && d < time.Second:
		return d.Round(time.Millisecond).String()
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %dm %ds", secs/3600, (secs%3600)/60, secs%60)
	}
}
