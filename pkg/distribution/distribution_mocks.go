package distribution

import (
	"fmt"
	"math/rand/v2"
)

// Constant is a degenerate distribution that always yields Value. It lets
// callers exercise sampling paths deterministically.
type Constant struct {
	Value float64
}

var _ Spec = Constant{}

func (Constant) Name() string { return "constant" }

func (c Constant) String() string { return fmt.Sprintf("constant(%v)", c.Value) }

func (Constant) Validate() error { return nil }

func (c Constant) NewSampler(_ rand.Source) (Sampler, error) {
	return constantSampler(c.Value), nil
}

type constantSampler float64

func (s constantSampler) Rand() float64 { return float64(s) }
