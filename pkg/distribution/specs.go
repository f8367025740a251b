package distribution

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples N(Mean in seconds, StdDev).
type Normal struct {
	Mean   time.Duration
	StdDev float64
}

func (Normal) Name() string { return "normal" }

func (d Normal) String() string {
	return fmt.Sprintf("normal(mean=%s, std_dev=%v)", d.Mean, d.StdDev)
}

func (d Normal) Validate() error {
	return check(d.Name()).positive("std_dev", d.StdDev).err()
}

func (d Normal) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.Normal{Mu: d.Mean.Seconds(), Sigma: d.StdDev, Src: src}, nil
}

// Exponential samples Exp(Lambda), mean 1/Lambda seconds.
type Exponential struct {
	Lambda float64
}

func (Exponential) Name() string { return "exponential" }

func (d Exponential) String() string {
	return fmt.Sprintf("exponential(lambda=%v)", d.Lambda)
}

func (d Exponential) Validate() error {
	return check(d.Name()).positive("lambda", d.Lambda).err()
}

func (d Exponential) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.Exponential{Rate: d.Lambda, Src: src}, nil
}

// LogNormal samples exp(N(Mean in seconds, StdDev)). Mean is the location of
// the underlying normal, not the mean of the result.
type LogNormal struct {
	Mean   time.Duration
	StdDev float64
}

func (LogNormal) Name() string { return "log-normal" }

func (d LogNormal) String() string {
	return fmt.Sprintf("log-normal(mean=%s, std_dev=%v)", d.Mean, d.StdDev)
}

func (d LogNormal) Validate() error {
	return check(d.Name()).positive("std_dev", d.StdDev).err()
}

func (d LogNormal) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.LogNormal{Mu: d.Mean.Seconds(), Sigma: d.StdDev, Src: src}, nil
}

// Pareto samples a Pareto distribution with minimum Scale and tail index
// Shape.
type Pareto struct {
	Scale float64
	Shape float64
}

func (Pareto) Name() string { return "pareto" }

func (d Pareto) String() string {
	return fmt.Sprintf("pareto(scale=%v, shape=%v)", d.Scale, d.Shape)
}

func (d Pareto) Validate() error {
	return check(d.Name()).positive("scale", d.Scale).positive("shape", d.Shape).err()
}

func (d Pareto) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.Pareto{Xm: d.Scale, Alpha: d.Shape, Src: src}, nil
}

type Weibull struct {
	Shape float64
	Scale float64
}

func (Weibull) Name() string { return "weibull" }

func (d Weibull) String() string {
	return fmt.Sprintf("weibull(shape=%v, scale=%v)", d.Shape, d.Scale)
}

func (d Weibull) Validate() error {
	return check(d.Name()).positive("shape", d.Shape).positive("scale", d.Scale).err()
}

func (d Weibull) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.Weibull{K: d.Shape, Lambda: d.Scale, Src: src}, nil
}

// Uniform samples seconds uniformly from [Min, Max).
type Uniform struct {
	Min time.Duration
	Max time.Duration
}

func (Uniform) Name() string { return "uniform" }

func (d Uniform) String() string {
	return fmt.Sprintf("uniform(min=%s, max=%s)", d.Min, d.Max)
}

func (d Uniform) Validate() error {
	return check(d.Name()).
		require(d.Min >= 0, "min must be >= 0, got %s", d.Min).
		require(d.Min < d.Max, "min must be < max, got %s >= %s", d.Min, d.Max).
		err()
}

func (d Uniform) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.Uniform{Min: d.Min.Seconds(), Max: d.Max.Seconds(), Src: src}, nil
}

// Triangular takes its bounds and mode in seconds.
type Triangular struct {
	Min  float64
	Max  float64
	Mode float64
}

func (Triangular) Name() string { return "triangular" }

func (d Triangular) String() string {
	return fmt.Sprintf("triangular(min=%v, max=%v, mode=%v)", d.Min, d.Max, d.Mode)
}

func (d Triangular) Validate() error {
	c := check(d.Name()).finite("min", d.Min).finite("max", d.Max).finite("mode", d.Mode)
	return c.require(d.Min < d.Max, "min must be < max, got %v >= %v", d.Min, d.Max).
		require(d.Min <= d.Mode && d.Mode <= d.Max, "mode must be within [min, max], got %v", d.Mode).
		err()
}

func (d Triangular) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	// NewTriangle panics outside a < b, a <= c <= b, which Validate rules out.
	return distuv.NewTriangle(d.Min, d.Max, d.Mode, src), nil
}

// Gamma is parameterised by shape and scale; gonum takes the rate 1/Scale.
type Gamma struct {
	Shape float64
	Scale float64
}

func (Gamma) Name() string { return "gamma" }

func (d Gamma) String() string {
	return fmt.Sprintf("gamma(shape=%v, scale=%v)", d.Shape, d.Scale)
}

func (d Gamma) Validate() error {
	return check(d.Name()).positive("shape", d.Shape).positive("scale", d.Scale).err()
}

func (d Gamma) NewSampler(src rand.Source) (Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return distuv.Gamma{Alpha: d.Shape, Beta: 1 / d.Scale, Src: src}, nil
}

var (
	_ Spec = Normal{}
	_ Spec = Exponential{}
	_ Spec = LogNormal{}
	_ Spec = Pareto{}
	_ Spec = Weibull{}
	_ Spec = Uniform{}
	_ Spec = Triangular{}
	_ Spec = Gamma{}
)
