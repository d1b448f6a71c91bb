// Package timeutil provides time-related functionality that can be mocked for testing.
package timeutil

import "time"

// Clock provides the current time and can be substituted in tests.
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock implements Clock using real system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a settable time for testing.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a new FixedClock with the given time.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the fixed time.
func (f *FixedClock) Now() time.Time {
	return f.current
}

// SetTime updates the fixed time (useful for testing time progression).
func (f *FixedClock) SetTime(t time.Time) {
	f.current = t
}

// Advance adds a duration to the current fixed time.
func (f *FixedClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
