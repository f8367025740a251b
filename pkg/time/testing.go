package ltime

import (
	"time"

	"pgregory.net/rapid"
)

var times = []string{
	"2020-06-01T00:00:00Z",
	"2020-06-01T06:00:00Z",
	"2020-06-01T12:00:00Z",
	"2020-06-01T18:00:00Z",
	"2020-06-01T23:59:59Z",
}

var timeSampler *rapid.Generator[time.Time]

func init() {
	timeGenerators := make([]*rapid.Generator[time.Time], 0)
	for _, time_ := range times {
		parsed, err := time.Parse(time.RFC3339, time_)
		if err != nil {
			panic(err)
		}
		timeGenerators = append(timeGenerators, rapid.Just(parsed))
	}
	timeSampler = rapid.OneOf(timeGenerators...)
}

func TestingTimeGenerator() *rapid.Generator[time.Time] {
	return timeSampler
}

// TestingDurationGenerator draws durations in [min, max] at millisecond
// granularity.
func TestingDurationGenerator(min, max time.Duration) *rapid.Generator[time.Duration] {
	return rapid.Custom(func(t *rapid.T) time.Duration {
		ms := rapid.Int64Range(int64(min/time.Millisecond), int64(max/time.Millisecond)).Draw(t, "millis")
		return time.Duration(ms) * time.Millisecond
	})
}

func TestingTimeOfDayGenerator() *rapid.Generator[TimeOfDay] {
	return rapid.Custom(func(t *rapid.T) TimeOfDay {
		return TimeOfDay{
			Hour:   rapid.IntRange(0, 23).Draw(t, "hour"),
			Minute: rapid.IntRange(0, 59).Draw(t, "minute"),
			Second: rapid.IntRange(0, 59).Draw(t, "second"),
		}
	})
}
