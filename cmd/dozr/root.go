package main

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dozr-cli/dozr/internal/config"
	"github.com/dozr-cli/dozr/pkg/random"
	ltime "github.com/dozr-cli/dozr/pkg/time"
	"github.com/dozr-cli/dozr/pkg/wait"
)

const adaptiveVerbose = "adaptive"

// options carries the global flags and the process collaborators. waitFn is
// what wait commands hand their condition to.
type options struct {
	cfg    *config.Config
	watch  ltime.Watch
	stdout io.Writer
	stderr io.Writer

	jitter      time.Duration
	verbose     string
	probability float64
	seed        uint64

	waitFn func(cmd *cobra.Command, condition wait.Condition) error
}

func newOptions(cfg *config.Config, watch ltime.Watch, stdout, stderr io.Writer) *options {
	opts := &options{
		cfg:    cfg,
		watch:  watch,
		stdout: stdout,
		stderr: stderr,
	}
	opts.waitFn = opts.execute
	return opts
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dozr",
		Short: "Sleep for a fixed, random, aligned or scheduled duration",
		Long: `dozr waits for a duration chosen by a policy: a fixed duration with
optional jitter, a sample from a probability distribution, the next
wall-clock multiple of an interval, or a time of day.

Example usage:
  # Wait 30 seconds plus up to 5 seconds of jitter
  dozr -j 5s duration 30s

  # Wait a normally distributed time, reporting progress
  dozr -v normal 1m 10

  # Wait until the next full 5 minutes, reporting every 10 seconds
  dozr align 5m -v 10s

  # Wait 10 seconds half of the time
  dozr -p 0.5 duration 10s`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(opts.stdout)
	rootCmd.SetErr(opts.stderr)

	flags := rootCmd.PersistentFlags()
	flags.DurationVarP(&opts.jitter, "jitter", "j", 0, "Maximum random jitter added to duration and distribution waits")
	flags.StringVarP(&opts.verbose, "verbose", "v", "", "Report progress; bare -v adapts the update period, -v=PERIOD fixes it")
	flags.Lookup("verbose").NoOptDefVal = adaptiveVerbose
	flags.Float64VarP(&opts.probability, "probability", "p", 1, "Only wait with this probability (0 to 1)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed the random source for reproducible waits (default from DOZR_SEED)")

	for _, wc := range waitCommands() {
		rootCmd.AddCommand(newWaitCmd(opts, wc))
	}
	rootCmd.AddCommand(newSampleCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))
	return rootCmd
}

// source returns the random source for this invocation: --seed, then
// DOZR_SEED, then a fresh seed.
func (o *options) source(cmd *cobra.Command) (rand.Source, error) {
	if cmd.Flags().Changed("seed") {
		return random.NewSeededSource(o.seed), nil
	}
	return random.NewSource(o.cfg.Seed)
}

// verboseSpec resolves the -v flag. trailing is a period given as an extra
// positional argument after bare -v.
func (o *options) verboseSpec(cmd *cobra.Command, trailing string) (wait.Verbose, error) {
	if !cmd.Flags().Changed("verbose") {
		if trailing != "" {
			return wait.Verbose{}, errors.Errorf("unexpected argument %q", trailing)
		}
		return wait.Silent(), nil
	}
	value := o.verbose
	if trailing != "" {
		if value != adaptiveVerbose {
			return wait.Verbose{}, errors.Errorf("update period given twice: %q and %q", value, trailing)
		}
		value = trailing
	}
	if value == adaptiveVerbose {
		return wait.AdaptiveVerbose(), nil
	}
	period, err := parseDuration("update period", value)
	if err != nil {
		return wait.Verbose{}, err
	}
	if period <= 0 {
		return wait.Verbose{}, errors.Errorf("update period must be positive, got %s", value)
	}
	return wait.FixedVerbose(period), nil
}

func (o *options) probabilitySet(cmd *cobra.Command) (bool, error) {
	if !cmd.Flags().Changed("probability") {
		return false, nil
	}
	if math.IsNaN(o.probability) || o.probability < 0 || o.probability > 1 {
		return false, errors.Wrapf(wait.ErrInvalidProbability, "got %v", o.probability)
	}
	return true, nil
}

// execute assembles the engine and runs one wait under the app instance.
func (o *options) execute(cmd *cobra.Command, condition wait.Condition) error {
	source, err := o.source(cmd)
	if err != nil {
		return err
	}
	deps, err := InitializeDependencies(source, o.stderr)
	if err != nil {
		return err
	}
	start := o.watch.Now()
	deps.app.AddCloseFunc(func() error {
		log.Debugf("%s wait ended after %s", condition.Policy.Kind(), o.watch.Now().Sub(start))
		return nil
	})
	return deps.app.Run(func(ctx context.Context) error {
		return deps.engine.Wait(ctx, condition)
	})
}
