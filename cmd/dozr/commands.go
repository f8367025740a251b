package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dozr-cli/dozr/pkg/distribution"
	ltime "github.com/dozr-cli/dozr/pkg/time"
	"github.com/dozr-cli/dozr/pkg/wait"
)

// distributionCommand maps positional arguments to a distribution.
type distributionCommand struct {
	name    string
	alias   string
	args    []string
	short   string
	example string
	build   func(args []string) (distribution.Spec, error)
}

func distributionCommands() []distributionCommand {
	return []distributionCommand{
		{
			name: "normal", alias: "n", args: []string{"MEAN", "STD_DEV"},
			short:   "Sample from a normal distribution; MEAN is a duration, STD_DEV is in seconds",
			example: "normal 1m 10",
			build: func(args []string) (distribution.Spec, error) {
				mean, err := parseDuration("mean", args[0])
				if err != nil {
					return nil, err
				}
				std, err := parseFloat("std_dev", args[1])
				if err != nil {
					return nil, err
				}
				return distribution.Normal{Mean: mean, StdDev: std}, nil
			},
		},
		{
			name: "exponential", alias: "e", args: []string{"LAMBDA"},
			short:   "Sample from an exponential distribution with rate LAMBDA per second",
			example: "exponential 0.1",
			build: func(args []string) (distribution.Spec, error) {
				lambda, err := parseFloat("lambda", args[0])
				if err != nil {
					return nil, err
				}
				return distribution.Exponential{Lambda: lambda}, nil
			},
		},
		{
			name: "log-normal", alias: "ln", args: []string{"MEAN", "STD_DEV"},
			short:   "Sample from a log-normal distribution; MEAN is the underlying normal mean and may be negative",
			example: "log-normal -- -0.5 0.25",
			build: func(args []string) (distribution.Spec, error) {
				mean, err := parseSignedDuration("mean", args[0])
				if err != nil {
					return nil, err
				}
				std, err := parseFloat("std_dev", args[1])
				if err != nil {
					return nil, err
				}
				return distribution.LogNormal{Mean: mean, StdDev: std}, nil
			},
		},
		{
			name: "pareto", alias: "par", args: []string{"SCALE", "SHAPE"},
			short:   "Sample from a Pareto distribution",
			example: "pareto 1 3",
			build: func(args []string) (distribution.Spec, error) {
				values, err := parseFloats(args, "scale", "shape")
				if err != nil {
					return nil, err
				}
				return distribution.Pareto{Scale: values[0], Shape: values[1]}, nil
			},
		},
		{
			name: "weibull", alias: "w", args: []string{"SHAPE", "SCALE"},
			short:   "Sample from a Weibull distribution",
			example: "weibull 1.5 10",
			build: func(args []string) (distribution.Spec, error) {
				values, err := parseFloats(args, "shape", "scale")
				if err != nil {
					return nil, err
				}
				return distribution.Weibull{Shape: values[0], Scale: values[1]}, nil
			},
		},
		{
			name: "uniform", alias: "u", args: []string{"MIN", "MAX"},
			short:   "Sample uniformly between two durations",
			example: "uniform 5s 15s",
			build: func(args []string) (distribution.Spec, error) {
				lo, err := parseDuration("min", args[0])
				if err != nil {
					return nil, err
				}
				hi, err := parseDuration("max", args[1])
				if err != nil {
					return nil, err
				}
				return distribution.Uniform{Min: lo, Max: hi}, nil
			},
		},
		{
			name: "triangular", alias: "t", args: []string{"MIN", "MAX", "MODE"},
			short:   "Sample from a triangular distribution, all values in seconds",
			example: "triangular 1 10 3",
			build: func(args []string) (distribution.Spec, error) {
				values, err := parseFloats(args, "min", "max", "mode")
				if err != nil {
					return nil, err
				}
				return distribution.Triangular{Min: values[0], Max: values[1], Mode: values[2]}, nil
			},
		},
		{
			name: "gamma", alias: "g", args: []string{"SHAPE", "SCALE"},
			short:   "Sample from a gamma distribution",
			example: "gamma 2 1.5",
			build: func(args []string) (distribution.Spec, error) {
				values, err := parseFloats(args, "shape", "scale")
				if err != nil {
					return nil, err
				}
				return distribution.Gamma{Shape: values[0], Scale: values[1]}, nil
			},
		},
	}
}

// waitCommand maps positional arguments to a policy. Commands with
// jittered set honour -j and -p.
type waitCommand struct {
	name     string
	alias    string
	args     []string
	short    string
	example  string
	jittered bool
	build    func(opts *options, args []string) (wait.Policy, error)
}

func waitCommands() []waitCommand {
	commands := []waitCommand{
		{
			name: "duration", alias: "d", args: []string{"DURATION"},
			short:    "Wait for a fixed duration",
			example:  "duration 30s",
			jittered: true,
			build: func(opts *options, args []string) (wait.Policy, error) {
				d, err := parseDuration("duration", args[0])
				if err != nil {
					return nil, err
				}
				return wait.Fixed{Base: d, Jitter: opts.jitter}, nil
			},
		},
		{
			name: "align", alias: "a", args: []string{"INTERVAL"},
			short:   "Wait until the next wall-clock multiple of INTERVAL",
			example: "align 5m",
			build: func(_ *options, args []string) (wait.Policy, error) {
				interval, err := parseDuration("interval", args[0])
				if err != nil {
					return nil, err
				}
				return wait.Align{Interval: interval}, nil
			},
		},
		{
			name: "at", args: []string{"HH:MM[:SS]"},
			short:   "Wait until a local time of day, tomorrow if it has passed",
			example: "at 14:30",
			build: func(opts *options, args []string) (wait.Policy, error) {
				target, err := ltime.ParseTimeOfDay(args[0])
				if err != nil {
					return nil, err
				}
				return wait.NewUntilClockTime(target, opts.watch.Now()), nil
			},
		},
	}
	for _, dc := range distributionCommands() {
		build := dc.build
		commands = append(commands, waitCommand{
			name:     dc.name,
			alias:    dc.alias,
			args:     dc.args,
			short:    dc.short,
			example:  dc.example,
			jittered: true,
			build: func(opts *options, args []string) (wait.Policy, error) {
				spec, err := build(args)
				if err != nil {
					return nil, err
				}
				return wait.Sampled{Distribution: spec, Jitter: opts.jitter}, nil
			},
		})
	}
	return commands
}

func newWaitCmd(opts *options, wc waitCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s %s", wc.name, strings.Join(wc.args, " ")),
		Short:   wc.short,
		Example: "  dozr " + wc.example,
		// One extra argument is the update period of a bare -v.
		Args: cobra.RangeArgs(len(wc.args), len(wc.args)+1),
		RunE: func(cmd *cobra.Command, args []string) error {
			condition, err := opts.condition(cmd, wc, args)
			if err != nil {
				return err
			}
			return opts.waitFn(cmd, condition)
		},
	}
	if wc.alias != "" {
		cmd.Aliases = []string{wc.alias}
	}
	return cmd
}

func (o *options) condition(cmd *cobra.Command, wc waitCommand, args []string) (wait.Condition, error) {
	trailing := ""
	if len(args) > len(wc.args) {
		trailing = args[len(wc.args)]
		args = args[:len(wc.args)]
	}
	verbose, err := o.verboseSpec(cmd, trailing)
	if err != nil {
		return wait.Condition{}, err
	}

	probabilistic, err := o.probabilitySet(cmd)
	if err != nil {
		return wait.Condition{}, err
	}
	if !wc.jittered {
		if probabilistic {
			return wait.Condition{}, errors.Errorf("--probability cannot be used with %s", wc.name)
		}
		if cmd.Flags().Changed("jitter") {
			return wait.Condition{}, errors.Errorf("--jitter cannot be used with %s", wc.name)
		}
	}
	if o.jitter < 0 {
		return wait.Condition{}, errors.Errorf("jitter must not be negative, got %s", o.jitter)
	}

	policy, err := wc.build(o, args)
	if err != nil {
		return wait.Condition{}, err
	}
	if probabilistic {
		policy = wait.Probabilistic{Probability: o.probability, Inner: policy}
	}
	return wait.Condition{Policy: policy, Verbose: verbose}, nil
}

// parseDuration accepts Go durations with optional spaces ("1h 30m") and a
// bare number of seconds.
func parseDuration(name, s string) (time.Duration, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if secs, err := strconv.ParseFloat(compact, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
			return 0, errors.Errorf("%s must be a finite non-negative number of seconds, got %q", name, s)
		}
		return ltime.SecondsToDuration(secs, 0), nil
	}
	d, err := time.ParseDuration(compact)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q: expected a duration such as 30s, 1m or 1h30m", name, s)
	}
	if d < 0 {
		return 0, errors.Errorf("%s must not be negative, got %q", name, s)
	}
	return d, nil
}

// parseSignedDuration is parseDuration for values that may be negative, such
// as a log-normal location. Negative values follow "--" on the command line.
func parseSignedDuration(name, s string) (time.Duration, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if secs, err := strconv.ParseFloat(compact, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, errors.Errorf("%s must be a finite number of seconds, got %q", name, s)
		}
		d := ltime.SecondsToDuration(math.Abs(secs), 0)
		if secs < 0 {
			return -d, nil
		}
		return d, nil
	}
	d, err := time.ParseDuration(compact)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q: expected a duration such as -500ms or 2s", name, s)
	}
	return d, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q: expected a number", name, s)
	}
	return v, nil
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := parseFloat(name, args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
