package random

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(src rand.Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestSeededSourceIsReproducible(t *testing.T) {
	assert.Equal(t, draw(NewSeededSource(42), 16), draw(NewSeededSource(42), 16))
	assert.NotEqual(t, draw(NewSeededSource(42), 16), draw(NewSeededSource(43), 16))
}

func TestNewSource(t *testing.T) {
	seed := uint64(7)
	seeded, err := NewSource(&seed)
	require.NoError(t, err)
	assert.Equal(t, draw(NewSeededSource(7), 4), draw(seeded, 4))

	a, err := NewSource(nil)
	require.NoError(t, err)
	b, err := NewSource(nil)
	require.NoError(t, err)
	assert.NotEqual(t, draw(a, 4), draw(b, 4))
}
