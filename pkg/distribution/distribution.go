package distribution

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var ErrInvalidParameters = errors.New("invalid distribution parameters")

// Sampler draws one value. It matches the Rand method of the gonum
// stat/distuv distributions.
type Sampler interface {
	Rand() float64
}

// Spec is a parameterised distribution of wait lengths in seconds. Building
// the sampler is the validation point: NewSampler fails with a
// *ParameterError when the parameters are outside the distribution's domain.
type Spec interface {
	Name() string
	Validate() error
	NewSampler(src rand.Source) (Sampler, error)
	fmt.Stringer
}

// Sample validates spec, builds a sampler over src and draws one value,
// flooring negative and NaN draws at zero.
func Sample(spec Spec, src rand.Source) (float64, error) {
	sampler, err := spec.NewSampler(src)
	if err != nil {
		return 0, err
	}
	return floor(sampler.Rand()), nil
}

// SampleN draws count values from a single sampler.
func SampleN(spec Spec, src rand.Source, count int) ([]float64, error) {
	sampler, err := spec.NewSampler(src)
	if err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = floor(sampler.Rand())
	}
	return out, nil
}

func floor(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// ParameterError lists every constraint a Spec violates.
type ParameterError struct {
	Distribution string
	Violations   *multierror.Error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameters.Error(), e.Distribution, e.Violations.Error())
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameters
}

type constraints struct {
	distribution string
	violations   *multierror.Error
}

func check(distribution string) *constraints {
	return &constraints{distribution: distribution}
}

func (c *constraints) require(ok bool, format string, args ...interface{}) *constraints {
	if !ok {
		c.violations = multierror.Append(c.violations, fmt.Errorf(format, args...))
	}
	return c
}

func (c *constraints) finite(name string, v float64) *constraints {
	return c.require(!math.IsNaN(v) && !math.IsInf(v, 0), "%s must be finite, got %v", name, v)
}

func (c *constraints) positive(name string, v float64) *constraints {
	return c.finite(name, v).require(v > 0, "%s must be > 0, got %v", name, v)
}

func (c *constraints) err() error {
	if c.violations == nil {
		return nil
	}
	c.violations.ErrorFormat = joinViolations
	return &ParameterError{Distribution: c.distribution, Violations: c.violations}
}

func joinViolations(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
