package service

import "sync"

// RefreshHub fans out "refresh this view" signals to the presentation layer
// after successful mutations. Subscribers receive view names; a slow
// subscriber is skipped rather than blocking the action path.
type RefreshHub struct {
	mu   sync.Mutex
	subs []chan string
}

// NewRefreshHub creates an empty hub.
func NewRefreshHub() *RefreshHub {
	return &RefreshHub{}
}

// Subscribe returns a channel receiving view names to refresh.
func (h *RefreshHub) Subscribe() <-chan string {
	ch := make(chan string, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, ch)
	return ch
}

// Unsubscribe removes a channel previously returned by Subscribe.
func (h *RefreshHub) Unsubscribe(ch <-chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, sub := range h.subs {
		if sub == ch {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Notify broadcasts a view name to every subscriber.
func (h *RefreshHub) Notify(view string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- view:
		default:
		}
	}
}
