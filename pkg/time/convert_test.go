package ltime

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondsToDuration(t *testing.T) {
	tests := []struct {
		secs  float64
		limit time.Duration
		want  time.Duration
	}{
		{1.5, time.Hour, 1500 * time.Millisecond},
		{0, time.Hour, 0},
		{-3, time.Hour, 0},
		{math.NaN(), time.Hour, 0},
		{math.Inf(1), time.Hour, time.Hour},
		{1e12, 24 * time.Hour, 24 * time.Hour},
		{1e300, 0, MaxDuration},
		{0.25, 0, 250 * time.Millisecond},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SecondsToDuration(tc.secs, tc.limit), "secs=%v limit=%v", tc.secs, tc.limit)
	}
}

func TestAddSaturating(t *testing.T) {
	assert.Equal(t, 1001*time.Millisecond, AddSaturating(time.Second, time.Millisecond))
	assert.Equal(t, time.Second, AddSaturating(time.Second, -time.Hour))
	assert.Equal(t, MaxDuration, AddSaturating(MaxDuration, time.Second))
	assert.Equal(t, MaxDuration, AddSaturating(MaxDuration-time.Nanosecond, 2*time.Nanosecond))
	assert.Equal(t, MaxDuration, AddSaturating(MaxDuration-time.Nanosecond, time.Nanosecond))
	assert.Equal(t, MaxDuration, AddSaturating(time.Second, MaxDuration))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "59s", FormatDuration(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "1m 5s", FormatDuration(65*time.Second))
	assert.Equal(t, "2h 0m 1s", FormatDuration(2*time.Hour+time.Second))
}

func TestRoundSeconds(t *testing.T) {
	assert.Equal(t, 2*time.Second, RoundSeconds(1500*time.Millisecond))
	assert.Equal(t, time.Second, RoundSeconds(1499*time.Millisecond))
	assert.Equal(t, time.Duration(0), RoundSeconds(400*time.Millisecond))
}

func TestTestingSleeperAdvancesWatch(t *testing.T) {
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	watch := NewTestingWatch(start)
	sleeper := NewTestingSleeper(watch)

	require.NoError(t, sleeper.Sleep(context.Background(), 3*time.Second))
	require.NoError(t, sleeper.Sleep(context.Background(), 250*time.Millisecond))

	assert.Equal(t, start.Add(3250*time.Millisecond), watch.Now())
	assert.Equal(t, []time.Duration{3 * time.Second, 250 * time.Millisecond}, sleeper.Slept)
	assert.Equal(t, 3250*time.Millisecond, sleeper.Total())
}

func TestWallSleeperCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := NewWallSleeper().Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWallSleeperSleeps(t *testing.T) {
	start := time.Now()
	require.NoError(t, NewWallSleeper().Sleep(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
