// Package session holds the process-wide gateway session cache.
package session

import (
	"sync"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
)

// Manager caches the single live gateway session for the process. Set is
// atomic with respect to concurrent Get calls: readers observe either the
// previous session or the new one, never a partial write.
//
// The manager is an explicitly owned, injectable object rather than a
// module-level variable so tests can substitute a fresh instance without
// cross-test leakage.
type Manager struct {
	mu      sync.RWMutex
	current model.Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{}
}

// Get returns the cached session. The second return value reports whether a
// session is present.
func (m *Manager) Get() (model.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current.IsZero() {
		return model.Session{}, false
	}
	return m.current, true
}

// Set replaces the cached session.
func (m *Manager) Set(s model.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}

// Clear drops the cached session. The next dispatch will reauthenticate.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = model.Session{}
}
