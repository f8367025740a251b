package wait

import (
	"fmt"
	"time"

	ltime "github.com/dozr-cli/dozr/pkg/time"
)

// Diagnostic lines are matched by scripts reading stderr; keep them stable.
const (
	remainingFormat     = "[DOZR] Time remaining: %ds\n"
	skipFormat          = "Probabilistic wait: Skipping sleep (probability: %v, roll: %v)\n"
	waitComplete        = "Wait complete."
	alignComplete       = "Alignment complete."
	untilComplete       = "Wait until time complete."
	probabilityComplete = "Probabilistic wait complete."
)

// Start lines show the configured maximum jitter; Outcome.Jitter holds the draw.
type messages struct {
	start    string
	complete string
}

func messagesFor(policy Policy, outcome Outcome) messages {
	switch p := policy.(type) {
	case Fixed:
		return messages{
			start: fmt.Sprintf("Waiting for %s (base: %s, jitter: %s)",
				ltime.FormatDuration(outcome.Duration), ltime.FormatDuration(p.Base), ltime.FormatDuration(p.Jitter)),
			complete: waitComplete,
		}
	case Probabilistic:
		return messages{
			start: fmt.Sprintf("Probabilistic wait: Sleeping for %s (probability: %v)",
				ltime.FormatDuration(outcome.Duration), p.Probability),
			complete: probabilityComplete,
		}
	case Sampled:
		return messages{
			start: fmt.Sprintf("Waiting for %s (sampled from %s, jitter: %s)",
				ltime.FormatDuration(outcome.Duration), p.Distribution, ltime.FormatDuration(p.Jitter)),
			complete: waitComplete,
		}
	case Align:
		return messages{
			start: fmt.Sprintf("Aligning to next %s interval. Waiting for %s",
				ltime.FormatDuration(p.Interval), ltime.FormatDuration(outcome.Duration)),
			complete: alignComplete,
		}
	case UntilClockTime:
		return messages{
			start: fmt.Sprintf("Waiting until %s. Sleeping for %s",
				p.Target, ltime.FormatDuration(outcome.Duration)),
			complete: untilComplete,
		}
	}
	return messages{
		start:    fmt.Sprintf("Waiting for %s", ltime.FormatDuration(outcome.Duration)),
		complete: waitComplete,
	}
}

func formatRemaining(remaining time.Duration) string {
	return fmt.Sprintf(remainingFormat, int64(remaining/time.Second))
}

func formatSkip(probability, roll float64) string {
	return fmt.Sprintf(skipFormat, probability, roll)
}
