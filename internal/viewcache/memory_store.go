package viewcache

import (
	"context"
	"sync"
	"time"

	"github.com/x-ordo/WPaymentManager-sub006/internal/timeutil"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is the default process-local view cache.
type MemoryStore struct {
	mu    sync.Mutex
	views map[string]map[string]memoryEntry
	clock timeutil.Clock
}

// NewMemoryStore creates an in-memory view cache. A nil clock defaults to
// the system clock.
func NewMemoryStore(clock timeutil.Clock) *MemoryStore {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &MemoryStore{
		views: make(map[string]map[string]memoryEntry),
		clock: clock,
	}
}

// Get returns the cached payload, lazily dropping expired entries.
func (s *MemoryStore) Get(_ context.Context, view, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.views[view]
	if !ok {
		return nil, false, nil
	}
	entry, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !s.clock.Now().Before(entry.expiresAt) {
		delete(entries, key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a payload under a view-scoped key. A non-positive TTL means the
// entry only goes away on invalidation.
func (s *MemoryStore) Set(_ context.Context, view, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.views[view]
	if !ok {
		entries = make(map[string]memoryEntry)
		s.views[view] = entries
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.clock.Now().Add(ttl)
	}
	entries[key] = memoryEntry{value: value, expiresAt: expiresAt}
	return nil
}

// InvalidateView drops every key cached under the view.
func (s *MemoryStore) InvalidateView(_ context.Context, view string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, view)
	return nil
}
