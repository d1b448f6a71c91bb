package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
	apperrors "github.com/x-ordo/WPaymentManager-sub006/internal/errors"
	"github.com/x-ordo/WPaymentManager-sub006/internal/session"
)

// Retry policy constants. The 5.1 second wait is the backoff the gateway
// demands after a 401 throttle response; three total attempts bound the
// worst case to roughly 3 x (latency + 5.1s) plus one recovery round trip.
const (
	DefaultThrottleWait = 5100 * time.Millisecond
	DefaultMaxAttempts  = 3
)

// sessionAuthenticator is the slice of the authenticator the dispatcher needs.
type sessionAuthenticator interface {
	Login(ctx context.Context) (model.Session, error)
}

// MetricsSink receives dispatch metrics; the statsd client satisfies it.
type MetricsSink interface {
	Count(name string, value int64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
}

// Sleeper pauses the logical request flow without blocking unrelated
// requests; tests substitute a recording fake.
type Sleeper func(ctx context.Context, d time.Duration) error

// DispatcherConfig tunes the retry policy.
type DispatcherConfig struct {
	ThrottleWait time.Duration
	MaxAttempts  int
}

// DispatcherOptions groups dependencies for Dispatcher.
type DispatcherOptions struct {
	Transport Transport            // Required: gateway transport
	Sessions  *session.Manager     // Required: process-wide session cache
	Auth      sessionAuthenticator // Required: single-flight login
	Config    DispatcherConfig     // Retry tuning; zero value uses defaults
	Logger    *slog.Logger         // Optional: structured logger
	Sleep     Sleeper              // Optional: defaults to context-aware sleep
	Metrics   MetricsSink          // Optional: dispatch metrics
}

// Dispatcher sends one request per logical operation and applies the
// response-code recovery policy:
//
//	"1", "3"  success (possibly empty), payload returned
//	"401"     gateway throttling: wait, retry identical request, ≤3 attempts
//	"402"     session invalidated: clear, reauthenticate, retry exactly once
//	other     domain error mapped through the per-path message table
//
// Transport-level failures are surfaced immediately and never consume the
// retry budget, including a failure during the mandated throttle wait.
type Dispatcher struct {
	transport Transport
	sessions  *session.Manager
	auth      sessionAuthenticator
	cfg       DispatcherConfig
	logger    *slog.Logger
	sleep     Sleeper
	metrics   MetricsSink
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	if opts.Transport == nil {
		panic("Transport is required")
	}
	if opts.Sessions == nil {
		panic("session.Manager is required")
	}
	if opts.Auth == nil {
		panic("authenticator is required")
	}

	cfg := opts.Config
	if cfg.ThrottleWait <= 0 {
		cfg.ThrottleWait = DefaultThrottleWait
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	sleep := opts.Sleep
	if sleep == nil {
		sleep = ctxSleep
	}

	return &Dispatcher{
		transport: opts.Transport,
		sessions:  opts.Sessions,
		auth:      opts.Auth,
		cfg:       cfg,
		logger:    opts.Logger,
		sleep:     sleep,
		metrics:   opts.Metrics,
	}
}

// Dispatch runs one logical gateway call to completion under the retry
// policy and returns the operation payload.
func (d *Dispatcher) Dispatch(ctx context.Context, path string, params map[string]string) (map[string]any, error) {
	reqID := uuid.NewString()
	started := time.Now()

	sess, ok := d.sessions.Get()
	if !ok {
		var err error
		sess, err = d.auth.Login(ctx)
		if err != nil {
			return nil, err
		}
	}

	attempts := 0
	reauthed := false
	for {
		attempts++
		d.count("gateway.dispatch.attempt", path)

		env, err := d.transport.RoundTrip(ctx, path, withConnection(params, sess.ConnectionID))
		if err != nil {
			d.count("gateway.dispatch.transport_error", path)
			d.log(ctx, reqID, path, "gateway transport failure", "attempt", attempts, "error", err)
			return nil, apperrors.Transport(err, "게이트웨이 요청에 실패했습니다")
		}

		switch env.Code {
		case CodeSuccess, CodeSuccessEmpty:
			payload, extractErr := ExtractPayload(path, env)
			if extractErr != nil {
				return nil, apperrors.Wrap(extractErr, apperrors.ErrCodeInternal, "extract payload")
			}
			d.timing("gateway.dispatch.duration", path, time.Since(started))
			d.log(ctx, reqID, path, "gateway call succeeded", "attempts", attempts, "code", env.Code)
			return payload, nil

		case CodeThrottled:
			d.count("gateway.dispatch.throttled", path)
			if attempts >= d.cfg.MaxAttempts {
				d.log(ctx, reqID, path, "throttle retry budget exhausted", "attempts", attempts)
				return nil, apperrors.Throttled(ResolveMessage(path, env.Code, env.Message))
			}
			d.log(ctx, reqID, path, "gateway throttled, backing off",
				"attempt", attempts, "wait", d.cfg.ThrottleWait)
			if sleepErr := d.sleep(ctx, d.cfg.ThrottleWait); sleepErr != nil {
				// The sequence ends here without consuming a retry slot.
				return nil, apperrors.Transport(sleepErr, "게이트웨이 요청이 중단되었습니다")
			}

		case CodeSessionDrop:
			if reauthed {
				d.log(ctx, reqID, path, "session dropped again after recovery")
				return nil, apperrors.SessionExpired(ResolveMessage(path, env.Code, env.Message))
			}
			d.count("gateway.dispatch.session_drop", path)
			d.log(ctx, reqID, path, "session invalidated, reauthenticating", "attempt", attempts)
			d.sessions.Clear()

			var loginErr error
			sess, loginErr = d.auth.Login(ctx)
			if loginErr != nil {
				return nil, loginErr
			}
			reauthed = true

		default:
			d.log(ctx, reqID, path, "gateway domain error", "code", env.Code)
			return nil, apperrors.Gateway(env.Code, ResolveMessage(path, env.Code, env.Message))
		}
	}
}

func withConnection(params map[string]string, connectionID string) map[string]string {
	merged := make(map[string]string, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["connect_id"] = connectionID
	return merged
}

func (d *Dispatcher) count(name, path string) {
	if d.metrics != nil {
		d.metrics.Count(name, 1, map[string]string{"path": path})
	}
}

func (d *Dispatcher) timing(name, path string, elapsed time.Duration) {
	if d.metrics != nil {
		d.metrics.Timing(name, elapsed, map[string]string{"path": path})
	}
}

func (d *Dispatcher) log(ctx context.Context, reqID, path, msg string, args ...any) {
	if d.logger == nil {
		return
	}
	all := append([]any{"request_id", reqID, "path", path}, args...)
	d.logger.InfoContext(ctx, msg, all...)
}

// ctxSleep sleeps for d or until the context is done.
func ctxSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
