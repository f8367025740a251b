package wait

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dozr-cli/dozr/pkg/distribution"
	"github.com/dozr-cli/dozr/pkg/jitter"
	"github.com/dozr-cli/dozr/pkg/progress"
	ltime "github.com/dozr-cli/dozr/pkg/time"
)

var (
	kindKey     = attribute.Key("wait.kind")
	durationKey = attribute.Key("wait.duration_ms")
	skippedKey  = attribute.Key("wait.skipped")
	verboseKey  = attribute.Key("wait.verbose")
)

// Outcome is a fully resolved wait. Jitter is the part of Duration that came
// from the jitter generator. Sample is the capped distribution draw for
// sampled policies. Roll and Skipped are only set for probabilistic waits.
type Outcome struct {
	Duration    time.Duration
	Sample      time.Duration
	Jitter      time.Duration
	Roll        float64
	Skipped     bool
	Description string
}

type Engine struct {
	config   *Config
	watch    ltime.Watch
	sleeper  ltime.Sleeper
	jitter   jitter.Generator
	source   rand.Source
	rng      *rand.Rand
	reporter *progress.Reporter
	out      io.Writer
	tracer   trace.Tracer
}

// NewEngine builds an engine. source feeds both the probabilistic roll and
// the distribution samplers; out receives the human readable progress lines.
func NewEngine(
	cfg *Config,
	watch ltime.Watch,
	sleeper ltime.Sleeper,
	generator jitter.Generator,
	source rand.Source,
	reporter *progress.Reporter,
	out io.Writer,
) *Engine {
	return &Engine{
		config:   cfg,
		watch:    watch,
		sleeper:  sleeper,
		jitter:   generator,
		source:   source,
		rng:      rand.New(source),
		reporter: reporter,
		out:      out,
		tracer:   otel.Tracer("github.com/dozr-cli/dozr/pkg/wait"),
	}
}

// Calculate resolves policy to a concrete duration without sleeping.
func (e *Engine) Calculate(policy Policy) (Outcome, error) {
	outcome, err := e.calculate(policy)
	if err != nil {
		return Outcome{}, err
	}
	outcome.Description = messagesFor(policy, outcome).start
	return outcome, nil
}

func (e *Engine) calculate(policy Policy) (Outcome, error) {
	switch p := policy.(type) {
	case Fixed:
		j := e.jitter.Generate(p.Jitter)
		return Outcome{Duration: ltime.AddSaturating(p.Base, j), Jitter: j}, nil

	case Sampled:
		if p.Distribution == nil {
			return Outcome{}, errors.New("sampled wait without a distribution")
		}
		secs, err := distribution.Sample(p.Distribution, e.source)
		if err != nil {
			return Outcome{}, err
		}
		sample := ltime.SecondsToDuration(secs, e.config.MaxSleep)
		j := e.jitter.Generate(p.Jitter)
		return Outcome{Duration: ltime.AddSaturating(sample, j), Sample: sample, Jitter: j}, nil

	case Probabilistic:
		if math.IsNaN(p.Probability) || p.Probability < 0 || p.Probability > 1 {
			return Outcome{}, errors.Wrapf(ErrInvalidProbability, "got %v", p.Probability)
		}
		roll := e.rng.Float64()
		if roll > p.Probability {
			return Outcome{Roll: roll, Skipped: true}, nil
		}
		if p.Inner == nil {
			return Outcome{Duration: nonNegative(p.Base), Roll: roll}, nil
		}
		inner, err := e.calculate(p.Inner)
		if err != nil {
			return Outcome{}, err
		}
		inner.Roll = roll
		return inner, nil

	case Align:
		now := e.watch.Now()
		if now.Unix() < 0 {
			return Outcome{}, errors.Wrapf(ErrClockRead, "system time %s is before the Unix epoch", now)
		}
		return Outcome{Duration: ltime.UntilNextAlignment(now.Unix(), p.Interval)}, nil

	case UntilClockTime:
		return Outcome{Duration: nonNegative(p.Duration)}, nil
	}
	return Outcome{}, errors.Errorf("unsupported wait policy %T", policy)
}

// Wait calculates the condition's duration and sleeps for it, reporting
// progress to the engine's writer when verbose. Nothing is slept when the
// calculation fails.
func (e *Engine) Wait(ctx context.Context, condition Condition) error {
	if condition.Policy == nil {
		return errors.New("wait condition without a policy")
	}
	kind := condition.Policy.Kind()
	ctx, span := e.tracer.Start(ctx, "wait."+kind,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			kindKey.String(kind),
			verboseKey.Bool(condition.Verbose.Enabled()),
		))
	defer span.End()

	err := e.wait(ctx, span, condition)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (e *Engine) wait(ctx context.Context, span trace.Span, condition Condition) error {
	outcome, err := e.Calculate(condition.Policy)
	if err != nil {
		return err
	}
	span.SetAttributes(
		durationKey.Int64(outcome.Duration.Milliseconds()),
		skippedKey.Bool(outcome.Skipped),
	)
	log.Debugf("%s wait resolved to %s", condition.Policy.Kind(), outcome.Duration)

	if outcome.Skipped {
		p := condition.Policy.(Probabilistic)
		log.Debugf("probabilistic wait skipped, roll %v above %v", outcome.Roll, p.Probability)
		if condition.Verbose.Enabled() {
			e.print(formatSkip(p.Probability, outcome.Roll))
		}
		return nil
	}

	if !condition.Verbose.Enabled() {
		return e.sleeper.Sleep(ctx, outcome.Duration)
	}

	msgs := messagesFor(condition.Policy, outcome)
	e.print(msgs.start + "\n")
	return e.reporter.Run(ctx, outcome.Duration, condition.Verbose.cadence(), func(remaining time.Duration) {
		if remaining == 0 {
			e.print(msgs.complete + "\n")
			return
		}
		e.print(formatRemaining(remaining))
	})
}

func (e *Engine) print(line string) {
	if _, err := fmt.Fprint(e.out, line); err != nil {
		log.Debugf("failed to write progress line: %s", err)
	}
}

func nonNegative(d time.Duration) time.Duration {
	return max(d, 0)
}
