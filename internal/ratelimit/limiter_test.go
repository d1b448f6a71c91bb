package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-ordo/WPaymentManager-sub006/internal/timeutil"
)

// noSleep records requested delays without actually sleeping.
func noSleep(slept *[]time.Duration) Sleeper {
	return func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
}

func newTestLimiter(t *testing.T, clock *timeutil.FixedClock) (*Limiter, *[]time.Duration) {
	t.Helper()
	slept := &[]time.Duration{}
	limiter := NewLimiter(LimiterOptions{
		Store:  NewMemoryStore(clock),
		Config: DefaultConfig(),
		Clock:  clock,
		Sleep:  noSleep(slept),
	})
	return limiter, slept
}

func TestLimiter_AllowsUntilFifthFailure(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter, _ := newTestLimiter(t, clock)

	for i := range 5 {
		d, err := limiter.Check(ctx, "operator")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "attempt %d should be allowed", i+1)
		require.NoError(t, limiter.Record(ctx, "operator", false))
	}

	d, err := limiter.Check(ctx, "operator")
	require.NoError(t, err)
	assert.False(t, d.Allowed, "sixth attempt within the window is rejected")
	assert.Equal(t, 5*time.Minute, d.RetryAfter)
}

func TestLimiter_RetryAfterStrictlyDecreases(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter, _ := newTestLimiter(t, clock)

	for range 5 {
		require.NoError(t, limiter.Record(ctx, "operator", false))
	}

	first, err := limiter.Check(ctx, "operator")
	require.NoError(t, err)
	require.False(t, first.Allowed)

	clock.Advance(30 * time.Second)
	second, err := limiter.Check(ctx, "operator")
	require.NoError(t, err)
	require.False(t, second.Allowed)
	assert.Less(t, second.RetryAfter, first.RetryAfter)

	clock.Advance(30 * time.Second)
	third, err := limiter.Check(ctx, "operator")
	require.NoError(t, err)
	require.False(t, third.Allowed)
	assert.Less(t, third.RetryAfter, second.RetryAfter)
}

func TestLimiter_WindowDoesNotSlide(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := timeutil.NewFixedClock(start)
	store := NewMemoryStore(clock)
	limiter := NewLimiter(LimiterOptions{
		Store: store,
		Clock: clock,
		Sleep: func(context.Context, time.Duration) error { return nil },
	})

	require.NoError(t, limiter.Record(ctx, "operator", false))

	// Later failures must not move ResetAt.
	clock.Advance(2 * time.Minute)
	require.NoError(t, limiter.Record(ctx, "operator", false))

	entry, ok, err := store.Get(ctx, "operator")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, start.Add(5*time.Minute), entry.ResetAt)
	assert.Equal(t, int64(2), entry.Count)
}

func TestLimiter_WindowExpiryUnlocks(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter, _ := newTestLimiter(t, clock)

	for range 5 {
		require.NoError(t, limiter.Record(ctx, "operator", false))
	}

	clock.Advance(5*time.Minute + time.Second)
	d, err := limiter.Check(ctx, "operator")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// The next failure after expiry starts a fresh entry.
	require.NoError(t, limiter.Record(ctx, "operator", false))
	entry, ok, err := limiter.store.Get(ctx, "operator")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), entry.Count)
}

func TestLimiter_SuccessResetsCount(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter, _ := newTestLimiter(t, clock)

	for range 4 {
		require.NoError(t, limiter.Record(ctx, "operator", false))
	}
	require.NoError(t, limiter.Record(ctx, "operator", true))

	_, ok, err := limiter.store.Get(ctx, "operator")
	require.NoError(t, err)
	assert.False(t, ok, "success deletes the entry entirely")

	require.NoError(t, limiter.Record(ctx, "operator", false))
	entry, ok, err := limiter.store.Get(ctx, "operator")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), entry.Count, "next failure starts a fresh count")
}

func TestLimiter_FailureDelayAppliedEveryTime(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter, slept := newTestLimiter(t, clock)

	require.NoError(t, limiter.Record(ctx, "operator", false))
	require.NoError(t, limiter.Record(ctx, "operator", false))
	require.NoError(t, limiter.Record(ctx, "operator", true))
	require.NoError(t, limiter.Record(ctx, "operator", false))

	// Three failures, three delays; the success costs nothing.
	require.Len(t, *slept, 3)
	for _, d := range *slept {
		assert.Equal(t, time.Second, d)
	}
}

func TestLimiter_IdentitiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter, _ := newTestLimiter(t, clock)

	for range 5 {
		require.NoError(t, limiter.Record(ctx, "operator-a", false))
	}

	blocked, err := limiter.Check(ctx, "operator-a")
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	open, err := limiter.Check(ctx, "operator-b")
	require.NoError(t, err)
	assert.True(t, open.Allowed)
}

func TestMemoryStore_ConcurrentFailsAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	done := make(chan struct{})
	for range 10 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				_, err := store.Fail(ctx, "operator", time.Hour)
				assert.NoError(t, err)
			}
		}()
	}
	for range 10 {
		<-done
	}

	entry, ok, err := store.Get(ctx, "operator")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1000), entry.Count)
}
