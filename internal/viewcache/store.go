// Package viewcache caches list-view query results for the dashboard and
// invalidates them after successful mutations, so the next read reflects the
// gateway's new state instead of a stale cached value.
package viewcache

import (
	"context"
	"time"
)

// Store persists cached view payloads. Keys are scoped by view name so a
// whole view can be invalidated at once after a mutation.
type Store interface {
	// Get returns the cached payload for a key within a view. The boolean is
	// false on a miss or after expiry.
	Get(ctx context.Context, view, key string) ([]byte, bool, error)

	// Set stores a payload under a view-scoped key with the given TTL.
	Set(ctx context.Context, view, key string, value []byte, ttl time.Duration) error

	// InvalidateView drops every key cached under the view.
	InvalidateView(ctx context.Context, view string) error
}

// View names for the cached dashboard lists.
const (
	ViewWithdrawalList   = "with_list"
	ViewWithdrawalSearch = "with_search"
	ViewDepositApplyList = "deposit_apply_list"
	ViewWithdrawalNotify = "with_alim_list"
	ViewDepositNotify    = "deposit_alim_list"
)
