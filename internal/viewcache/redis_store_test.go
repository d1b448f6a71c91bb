package viewcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-ordo/WPaymentManager-sub006/internal/testutil"
)

func TestRedisStore_SetGetRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()
	view := "test_" + t.Name()
	t.Cleanup(func() { _ = store.InvalidateView(context.Background(), view) })

	_, ok, err := store.Get(ctx, view, "range-a")
	require.NoError(t, err)
	assert.False(t, ok, "miss before set")

	payload := []byte(`{"total":"1"}`)
	require.NoError(t, store.Set(ctx, view, "range-a", payload, time.Minute))

	value, ok, err := store.Get(ctx, view, "range-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, value)
}

func TestRedisStore_InvalidateViewOrphansEntries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()
	view := "test_" + t.Name()
	t.Cleanup(func() { _ = store.InvalidateView(context.Background(), view) })

	require.NoError(t, store.Set(ctx, view, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, view, "b", []byte("2"), time.Minute))

	require.NoError(t, store.InvalidateView(ctx, view))

	for _, key := range []string{"a", "b"} {
		_, ok, err := store.Get(ctx, view, key)
		require.NoError(t, err)
		assert.False(t, ok, "entry %q must be gone after invalidation", key)
	}

	// Writes after invalidation land under the new generation and are
	// readable again.
	require.NoError(t, store.Set(ctx, view, "a", []byte("3"), time.Minute))
	value, ok, err := store.Get(ctx, view, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("3"), value)
}

func TestRedisStore_NonPositiveTTLStillExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()
	view := "test_" + t.Name()
	t.Cleanup(func() { _ = store.InvalidateView(context.Background(), view) })

	require.NoError(t, store.Set(ctx, view, "k", []byte("v"), 0))

	gen, err := store.generation(ctx, view)
	require.NoError(t, err)
	ttl := client.TTL(ctx, store.entryKey(view, gen, "k")).Val()
	assert.True(t, ttl > 0 && ttl <= time.Hour, "zero TTL must fall back to the one-hour cap")
}
