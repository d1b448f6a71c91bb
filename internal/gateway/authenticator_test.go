package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/x-ordo/WPaymentManager-sub006/internal/errors"
	"github.com/x-ordo/WPaymentManager-sub006/internal/ratelimit"
	"github.com/x-ordo/WPaymentManager-sub006/internal/session"
	"github.com/x-ordo/WPaymentManager-sub006/internal/timeutil"
)

var testCreds = Credentials{Identity: "operator", Secret: "secret"}

func newTestLimiter(clock timeutil.Clock) *ratelimit.Limiter {
	return ratelimit.NewLimiter(ratelimit.LimiterOptions{
		Store: ratelimit.NewMemoryStore(clock),
		Clock: clock,
		Sleep: func(context.Context, time.Duration) error { return nil },
	})
}

func TestAuthenticator_LoginSuccess(t *testing.T) {
	fixture := NewFixtureTransport()
	sessions := session.NewManager()
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	auth := NewAuthenticator(AuthenticatorOptions{
		Transport:   fixture,
		Sessions:    sessions,
		Limiter:     newTestLimiter(clock),
		Credentials: testCreds,
		Clock:       clock,
	})

	sess, err := auth.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixture-conn-0001", sess.ConnectionID)
	assert.Equal(t, "fixture-operator", sess.UserName)
	assert.Equal(t, "1", sess.UserClass)
	assert.Equal(t, clock.Now(), sess.ObtainedAt)

	cached, ok := sessions.Get()
	require.True(t, ok)
	assert.Equal(t, sess, cached)

	calls := fixture.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, PathLogin, calls[0].Path)
	assert.Equal(t, "operator", calls[0].Params["id"])
	assert.Equal(t, "secret", calls[0].Params["pw"])
}

func TestAuthenticator_RejectedLoginIsNotRetried(t *testing.T) {
	fixture := NewFixtureTransport()
	fixture.StubDefault(PathLogin, CodeEnvelope("201", ""))
	sessions := session.NewManager()

	auth := NewAuthenticator(AuthenticatorOptions{
		Transport:   fixture,
		Sessions:    sessions,
		Limiter:     newTestLimiter(nil),
		Credentials: testCreds,
	})

	_, err := auth.Login(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, "아이디 또는 비밀번호가 올바르지 않습니다", err.Error())
	assert.Equal(t, 1, fixture.CallCount(PathLogin), "a rejected login is a configuration problem, never retried")

	_, ok := sessions.Get()
	assert.False(t, ok)
}

func TestAuthenticator_LockoutBlocksWithoutNetworkCall(t *testing.T) {
	fixture := NewFixtureTransport()
	fixture.StubDefault(PathLogin, CodeEnvelope("201", ""))
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	auth := NewAuthenticator(AuthenticatorOptions{
		Transport:   fixture,
		Sessions:    session.NewManager(),
		Limiter:     newTestLimiter(clock),
		Credentials: testCreds,
		Clock:       clock,
	})

	for range 5 {
		_, err := auth.Login(context.Background())
		require.Error(t, err)
	}
	require.Equal(t, 5, fixture.CallCount(PathLogin))

	_, err := auth.Login(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsLockedOut(err))
	assert.Equal(t, 5, fixture.CallCount(PathLogin), "locked-out attempt makes no network call")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 5*time.Minute, appErr.RetryAfter)
}

func TestAuthenticator_TransportFailureDoesNotCountTowardLockout(t *testing.T) {
	fixture := NewFixtureTransport()
	fixture.FailWith(PathLogin, context.DeadlineExceeded)
	clock := timeutil.NewFixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	limiter := newTestLimiter(clock)

	auth := NewAuthenticator(AuthenticatorOptions{
		Transport:   fixture,
		Sessions:    session.NewManager(),
		Limiter:     limiter,
		Credentials: testCreds,
		Clock:       clock,
	})

	for range 6 {
		_, err := auth.Login(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsTransport(err))
	}

	// All six reached the transport: nothing was locked out.
	assert.Equal(t, 6, fixture.CallCount(PathLogin))
}

// gatedTransport blocks RoundTrip until released, to hold concurrent logins
// in flight at the same time.
type gatedTransport struct {
	inner   Transport
	release chan struct{}
	entered chan struct{}
}

func (g *gatedTransport) RoundTrip(ctx context.Context, path string, params map[string]string) (Envelope, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.inner.RoundTrip(ctx, path, params)
}

func TestAuthenticator_ConcurrentLoginsAreSingleFlight(t *testing.T) {
	fixture := NewFixtureTransport()
	gate := &gatedTransport{
		inner:   fixture,
		release: make(chan struct{}),
		entered: make(chan struct{}, 16),
	}

	auth := NewAuthenticator(AuthenticatorOptions{
		Transport:   gate,
		Sessions:    session.NewManager(),
		Limiter:     newTestLimiter(nil),
		Credentials: testCreds,
	})

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	conns := make([]string, callers)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, err := auth.Login(context.Background())
			errs[i] = err
			conns[i] = sess.ConnectionID
		}()
	}

	// Wait until the first caller is inside the transport, give the rest a
	// moment to join the shared flight, then release it.
	<-gate.entered
	time.Sleep(50 * time.Millisecond)
	close(gate.release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "fixture-conn-0001", conns[i])
	}
	assert.Equal(t, 1, fixture.CallCount(PathLogin), "concurrent logins coalesce into one request")
}
