package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
	apperrors "github.com/x-ordo/WPaymentManager-sub006/internal/errors"
	"github.com/x-ordo/WPaymentManager-sub006/internal/ratelimit"
	"github.com/x-ordo/WPaymentManager-sub006/internal/session"
	"github.com/x-ordo/WPaymentManager-sub006/internal/timeutil"
)

// Credentials are the fixed operator credentials the integration layer logs
// in with. They are configuration, not end-user input: a rejected login is a
// configuration-level problem, so the authenticator never retries one.
type Credentials struct {
	Identity string
	Secret   string
}

// loginRateLimiter is the slice of the rate limiter the authenticator needs.
type loginRateLimiter interface {
	Check(ctx context.Context, identity string) (ratelimit.Decision, error)
	Record(ctx context.Context, identity string, success bool) error
}

// AuthenticatorOptions groups dependencies for Authenticator.
type AuthenticatorOptions struct {
	Transport   Transport        // Required: gateway transport
	Sessions    *session.Manager // Required: process-wide session cache
	Limiter     loginRateLimiter // Required: login lockout guard
	Credentials Credentials      // Required: fixed operator credentials
	Logger      *slog.Logger     // Optional: structured logger
	Clock       timeutil.Clock   // Optional: defaults to system clock
	Metrics     MetricsSink      // Optional: login metrics
}

// Authenticator performs the login handshake and populates the session
// cache. Concurrent callers needing authentication are coalesced into a
// single outstanding login request: login attempts are themselves rate
// limited, and duplicate concurrent logins would waste that budget.
type Authenticator struct {
	transport Transport
	sessions  *session.Manager
	limiter   loginRateLimiter
	creds     Credentials
	logger    *slog.Logger
	clock     timeutil.Clock
	metrics   MetricsSink
	group     singleflight.Group
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(opts AuthenticatorOptions) *Authenticator {
	if opts.Transport == nil {
		panic("Transport is required")
	}
	if opts.Sessions == nil {
		panic("session.Manager is required")
	}
	if opts.Limiter == nil {
		panic("login rate limiter is required")
	}

	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}

	return &Authenticator{
		transport: opts.Transport,
		sessions:  opts.Sessions,
		limiter:   opts.Limiter,
		creds:     opts.Credentials,
		logger:    opts.Logger,
		clock:     clock,
		metrics:   opts.Metrics,
	}
}

// Login performs the gateway login handshake. On success the session cache
// is populated and the rate-limit entry for the operator identity is wiped.
// On a rejected login the failure is recorded (which also imposes the fixed
// failure delay) and a structured failure is returned without retrying.
func (a *Authenticator) Login(ctx context.Context) (model.Session, error) {
	decision, err := a.limiter.Check(ctx, a.creds.Identity)
	if err != nil {
		return model.Session{}, fmt.Errorf("check login lockout: %w", err)
	}
	if !decision.Allowed {
		a.countLogin("login.lockout.blocked")
		retryAfter := decision.RetryAfter
		msg := fmt.Sprintf("로그인이 잠겼습니다. %d초 후 다시 시도해주세요", int(retryAfter.Seconds()))
		return model.Session{}, apperrors.LockedOut(msg, retryAfter)
	}

	v, err, _ := a.group.Do("login", func() (any, error) {
		return a.login(ctx)
	})
	if err != nil {
		return model.Session{}, err
	}
	return v.(model.Session), nil
}

func (a *Authenticator) login(ctx context.Context) (model.Session, error) {
	env, err := a.transport.RoundTrip(ctx, PathLogin, map[string]string{
		"id": a.creds.Identity,
		"pw": a.creds.Secret,
	})
	if err != nil {
		// A transport failure is not a rejected login; it does not count
		// toward the lockout.
		return model.Session{}, apperrors.Transport(err, "게이트웨이에 연결할 수 없습니다")
	}

	if !env.IsSuccess() {
		a.countLogin("gateway.auth.rejected")
		if recordErr := a.limiter.Record(ctx, a.creds.Identity, false); recordErr != nil {
			return model.Session{}, fmt.Errorf("record failed login: %w", recordErr)
		}
		if a.logger != nil {
			a.logger.Warn("gateway login rejected", "code", env.Code)
		}
		return model.Session{}, apperrors.Auth(ResolveMessage(PathLogin, env.Code, env.Message))
	}

	payload, err := ExtractPayload(PathLogin, env)
	if err != nil {
		return model.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "extract login payload")
	}

	sess := model.Session{
		ConnectionID: stringValue(payload, "_CONNID"),
		ObtainedAt:   a.clock.Now(),
		UserName:     stringValue(payload, "_NAME"),
		UserClass:    stringValue(payload, "_CLASS"),
	}
	if sess.ConnectionID == "" {
		return model.Session{}, apperrors.Internal("login response missing connection id")
	}

	a.sessions.Set(sess)
	if err := a.limiter.Record(ctx, a.creds.Identity, true); err != nil {
		return model.Session{}, fmt.Errorf("reset login attempts: %w", err)
	}

	a.countLogin("gateway.auth.success")
	if a.logger != nil {
		a.logger.Info("gateway session established",
			"user", sess.UserName,
			"class", sess.UserClass)
	}
	return sess, nil
}

func (a *Authenticator) countLogin(name string) {
	if a.metrics != nil {
		a.metrics.Count(name, 1, nil)
	}
}

func stringValue(payload map[string]any, key string) string {
	if s, ok := payload[key].(string); ok {
		return s
	}
	return ""
}
