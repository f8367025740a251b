package wait

import (
	"time"

	"github.com/dozr-cli/dozr/pkg/distribution"
	"github.com/dozr-cli/dozr/pkg/progress"
	ltime "github.com/dozr-cli/dozr/pkg/time"
)

// Policy is the closed set of ways to compute a wait: Fixed, Probabilistic,
// Sampled, Align and UntilClockTime. The unexported method keeps other
// packages from adding variants, so Engine.Calculate can switch over all of
// them.
type Policy interface {
	Kind() string
	policy()
}

// Fixed waits Base plus up to Jitter.
type Fixed struct {
	Base   time.Duration
	Jitter time.Duration
}

func (Fixed) Kind() string { return "fixed" }
func (Fixed) policy()      {}

// Probabilistic waits with probability Probability and otherwise returns
// immediately. The duration is Base, or Inner's duration when Inner is set.
// One roll is drawn per wait.
type Probabilistic struct {
	Base        time.Duration
	Probability float64
	Inner       Policy
}

func (Probabilistic) Kind() string { return "probabilistic" }
func (Probabilistic) policy()      {}

// Sampled draws the wait in seconds from Distribution and adds up to Jitter.
type Sampled struct {
	Distribution distribution.Spec
	Jitter       time.Duration
}

func (Sampled) Kind() string { return "sampled" }
func (Sampled) policy()      {}

// Align waits until the next wall-clock multiple of Interval since the Unix
// epoch.
type Align struct {
	Interval time.Duration
}

func (Align) Kind() string { return "align" }
func (Align) policy()      {}

// UntilClockTime holds a wait already resolved against the clock; see
// NewUntilClockTime.
type UntilClockTime struct {
	Target   ltime.TimeOfDay
	Duration time.Duration
}

func NewUntilClockTime(target ltime.TimeOfDay, now time.Time) UntilClockTime {
	return UntilClockTime{Target: target, Duration: target.Until(now)}
}

func (UntilClockTime) Kind() string { return "until" }
func (UntilClockTime) policy()      {}

type VerboseMode int

const (
	VerboseNone VerboseMode = iota
	VerboseAdaptive
	VerboseFixed
)

// Verbose selects progress reporting. Period only applies to VerboseFixed.
type Verbose struct {
	Mode   VerboseMode
	Period time.Duration
}

func Silent() Verbose { return Verbose{Mode: VerboseNone} }

func AdaptiveVerbose() Verbose { return Verbose{Mode: VerboseAdaptive} }

func FixedVerbose(period time.Duration) Verbose {
	return Verbose{Mode: VerboseFixed, Period: period}
}

func (v Verbose) Enabled() bool { return v.Mode != VerboseNone }

func (v Verbose) cadence() progress.Cadence {
	if v.Mode == VerboseFixed {
		return progress.Fixed(v.Period)
	}
	return progress.Adaptive()
}

// Condition is one wait: a policy and how to report on it.
type Condition struct {
	Policy  Policy
	Verbose Verbose
}

var (
	_ Policy = Fixed{}
	_ Policy = Probabilistic{}
	_ Policy = Sampled{}
	_ Policy = Align{}
	_ Policy = UntilClockTime{}
)
