package wait

import "github.com/pkg/errors"

var (
	ErrClockRead          = errors.New("failed to read the system clock")
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
)
