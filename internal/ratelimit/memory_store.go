package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/x-ordo/WPaymentManager-sub006/internal/timeutil"
)

// MemoryStore is the default process-local AttemptStore. State is lost on
// restart and not shared across instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	clock   timeutil.Clock
}

// NewMemoryStore creates an in-memory attempt store. A nil clock defaults to
// the system clock.
func NewMemoryStore(clock timeutil.Clock) *MemoryStore {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &MemoryStore{
		entries: make(map[string]Entry),
		clock:   clock,
	}
}

// Fail creates or increments the entry for an identity. An expired entry is
// replaced by a fresh one rather than resumed.
func (s *MemoryStore) Fail(_ context.Context, identity string, window time.Duration) (Entry, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[identity]
	if !ok || !now.Before(entry.ResetAt) {
		entry = Entry{Count: 1, ResetAt: now.Add(window)}
	} else {
		entry.Count++
	}
	s.entries[identity] = entry
	return entry, nil
}

// Get returns the live entry for an identity, lazily dropping expired ones.
func (s *MemoryStore) Get(_ context.Context, identity string) (Entry, bool, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[identity]
	if !ok {
		return Entry{}, false, nil
	}
	if !now.Before(entry.ResetAt) {
		delete(s.entries, identity)
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Reset deletes any entry for the identity.
func (s *MemoryStore) Reset(_ context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, identity)
	return nil
}
