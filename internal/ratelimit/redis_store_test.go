package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-ordo/WPaymentManager-sub006/internal/testutil"
)

func TestRedisStore_FailStartsFixedWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRedisStoreWithPrefix(client, "test:attempts:window:")
	ctx := context.Background()
	identity := "operator-" + t.Name()
	t.Cleanup(func() { _ = store.Reset(context.Background(), identity) })

	window := time.Minute
	before := time.Now()
	entry, err := store.Fail(ctx, identity, window)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.Count)
	assert.WithinDuration(t, before.Add(window), entry.ResetAt, 2*time.Second)

	// The window is fixed at the first failure: further failures count up
	// without extending the expiry.
	second, err := store.Fail(ctx, identity, window)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Count)
	assert.True(t, !second.ResetAt.After(entry.ResetAt.Add(time.Second)),
		"second failure must not slide the window")

	ttl := client.PTTL(ctx, "test:attempts:window:"+identity).Val()
	assert.True(t, ttl > 0 && ttl <= window, "key must carry the window TTL")
}

func TestRedisStore_GetAndReset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRedisStoreWithPrefix(client, "test:attempts:getreset:")
	ctx := context.Background()
	identity := "operator-" + t.Name()
	t.Cleanup(func() { _ = store.Reset(context.Background(), identity) })

	_, ok, err := store.Get(ctx, identity)
	require.NoError(t, err)
	assert.False(t, ok, "miss before any failure")

	_, err = store.Fail(ctx, identity, time.Minute)
	require.NoError(t, err)
	_, err = store.Fail(ctx, identity, time.Minute)
	require.NoError(t, err)

	entry, ok, err := store.Get(ctx, identity)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), entry.Count)
	assert.True(t, entry.ResetAt.After(time.Now()))

	require.NoError(t, store.Reset(ctx, identity))
	_, ok, err = store.Get(ctx, identity)
	require.NoError(t, err)
	assert.False(t, ok, "reset must wipe the entry")
}

func TestRedisStore_WindowExpiryUnlocks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRedisStoreWithPrefix(client, "test:attempts:expiry:")
	ctx := context.Background()
	identity := "operator-" + t.Name()
	t.Cleanup(func() { _ = store.Reset(context.Background(), identity) })

	_, err := store.Fail(ctx, identity, 100*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, ok, err := store.Get(ctx, identity)
	require.NoError(t, err)
	assert.False(t, ok, "entry must expire with the window")

	// A failure after expiry starts a fresh window from one.
	entry, err := store.Fail(ctx, identity, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.Count)
}
