package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// NewSource returns a PCG source. A nil seed draws one from the operating
// system so that separate invocations do not share a sequence.
func NewSource(seed *uint64) (rand.Source, error) {
	if seed != nil {
		return NewSeededSource(*seed), nil
	}
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read random seed")
	}
	return rand.NewPCG(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])), nil
}

// NewSeededSource is deterministic: equal seeds produce equal sequences.
func NewSeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
