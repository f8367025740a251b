package ltest

import (
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// T is the subset of testing.TB shared by *testing.T and *rapid.T (through
// RapidT), so helpers can serve both plain and property tests.
type T interface {
	Helper()
	Fatalf(format string, args ...interface{})
	Cleanup(func())
	assert.TestingT
}

func NewRapidT(t *rapid.T) *RapidT {
	return &RapidT{
		T: t,
	}
}

type RapidT struct {
	*rapid.T
	cleanups []func()
}

func (r *RapidT) Helper() {
}

func (r *RapidT) Fatalf(format string, args ...interface{}) {
	r.T.Fatalf(format, args...)
}

// Errorf fails the current property draw; rapid shrinks from there.
func (r *RapidT) Errorf(format string, args ...interface{}) {
	r.T.Errorf(format, args...)
}

func (r *RapidT) Cleanup(f func()) {
	r.cleanups = append(r.cleanups, f)
}

// RunCleanup runs registered cleanups in reverse order, like testing.T.
func (r *RapidT) RunCleanup() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
	r.cleanups = nil
}

var _ T = &RapidT{}

// Check runs a rapid property with a RapidT whose cleanups run after every
// draw.
func Check(t rapid.TB, prop func(t *RapidT)) {
	rapid.Check(t, func(rt *rapid.T) {
		wrapped := NewRapidT(rt)
		defer wrapped.RunCleanup()
		prop(wrapped)
	})
}
