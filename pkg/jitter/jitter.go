package jitter

import (
	"math/rand/v2"
	"time"
)

// Generator produces a random non-negative duration no larger than max.
type Generator interface {
	Generate(max time.Duration) time.Duration
}

// RandomGenerator draws whole milliseconds uniformly from [0, max].
type RandomGenerator struct {
	rng *rand.Rand
}

func NewRandomGenerator(src rand.Source) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(src)}
}

// Generate returns zero for a non-positive bound without touching the
// random source.
func (g *RandomGenerator) Generate(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	millis := uint64(max / time.Millisecond)
	return time.Duration(g.rng.Uint64N(millis+1)) * time.Millisecond
}

var _ Generator = &RandomGenerator{}
