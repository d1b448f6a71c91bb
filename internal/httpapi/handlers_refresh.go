package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/x-ordo/WPaymentManager-sub006/internal/service"
)

// RefreshHandlers streams view-refresh signals to the dashboard as
// server-sent events so open list views can refetch after a mutation.
type RefreshHandlers struct {
	Hub    *service.RefreshHub
	Logger *slog.Logger
}

// Stream sends one SSE "refresh" event per invalidated view until the
// client disconnects.
func (h *RefreshHandlers) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case view := <-ch:
			if _, err := fmt.Fprintf(w, "event: refresh\ndata: %s\n\n", view); err != nil {
				if h.Logger != nil {
					h.Logger.Debug("refresh stream write failed", "error", err)
				}
				return
			}
			flusher.Flush()
		}
	}
}
