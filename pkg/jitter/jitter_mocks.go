package jitter

import "time"

// GeneratorMock always returns Jitter and records the bounds it was asked
// for.
type GeneratorMock struct {
	Jitter time.Duration
	Bounds []time.Duration
}

var _ Generator = &GeneratorMock{}

func (m *GeneratorMock) Generate(max time.Duration) time.Duration {
	m.Bounds = append(m.Bounds, max)
	return m.Jitter
}
