// Package ratelimit implements the fixed-window login lockout that guards
// the gateway login handshake. The counting state lives behind a pluggable
// AttemptStore so a multi-instance deployment can swap the process-local map
// for a shared Redis store without touching the limiter logic.
package ratelimit

import (
	"context"
	"time"
)

// Entry is the live failure record for one login identity. ResetAt is fixed
// when the entry is created and never moves on later failures: the lockout
// window does not slide.
type Entry struct {
	Count   int64     `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// AttemptStore persists failure entries keyed by login identity.
type AttemptStore interface {
	// Fail records one failed attempt: it creates a fresh entry with the
	// given window when none is live, otherwise increments the count without
	// extending the window. It returns the entry after the update.
	// Implementations must be safe for concurrent callers on the same
	// identity (no lost increments).
	Fail(ctx context.Context, identity string, window time.Duration) (Entry, error)

	// Get returns the live entry for an identity. The second return value is
	// false when no entry exists or the entry has expired.
	Get(ctx context.Context, identity string) (Entry, bool, error)

	// Reset deletes any entry for the identity.
	Reset(ctx context.Context, identity string) error
}
