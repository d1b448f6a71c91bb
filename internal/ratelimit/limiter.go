package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/x-ordo/WPaymentManager-sub006/internal/timeutil"
)

// Config tunes the lockout policy.
type Config struct {
	// MaxFailures is the failure count at which further attempts are blocked.
	MaxFailures int64
	// Window is the fixed lockout window started by the first failure.
	Window time.Duration
	// FailureDelay is the fixed pause imposed on every failed login before
	// the caller gets the failure back, independent of the counting logic.
	FailureDelay time.Duration
}

// DefaultConfig returns the lockout policy the gateway operators run with:
// five failures lock the identity for five minutes, and every failure costs
// about a second.
func DefaultConfig() Config {
	return Config{
		MaxFailures:  5,
		Window:       5 * time.Minute,
		FailureDelay: time.Second,
	}
}

// Decision is the outcome of a lockout check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Sleeper pauses the caller; tests substitute a recording fake.
type Sleeper func(ctx context.Context, d time.Duration) error

// LimiterOptions groups dependencies for Limiter.
type LimiterOptions struct {
	Store  AttemptStore   // Required: failure entry store
	Config Config         // Lockout policy; zero value falls back to defaults
	Logger *slog.Logger   // Optional: structured logger
	Clock  timeutil.Clock // Optional: defaults to system clock
	Sleep  Sleeper        // Optional: defaults to context-aware time.Sleep
}

// Limiter enforces a per-identity fixed-window lockout in front of the login
// handshake. It never performs network I/O itself.
type Limiter struct {
	store  AttemptStore
	cfg    Config
	logger *slog.Logger
	clock  timeutil.Clock
	sleep  Sleeper
}

// NewLimiter constructs a Limiter.
func NewLimiter(opts LimiterOptions) *Limiter {
	if opts.Store == nil {
		panic("AttemptStore is required")
	}

	cfg := opts.Config
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = DefaultConfig().MaxFailures
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	if cfg.FailureDelay < 0 {
		cfg.FailureDelay = 0
	}

	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}

	sleep := opts.Sleep
	if sleep == nil {
		sleep = ctxSleep
	}

	return &Limiter{
		store:  opts.Store,
		cfg:    cfg,
		logger: opts.Logger,
		clock:  clock,
		sleep:  sleep,
	}
}

// Check reports whether a login attempt for the identity may proceed. A
// blocked identity gets the remaining time until its window resets; the
// remaining time strictly decreases on subsequent checks.
func (l *Limiter) Check(ctx context.Context, identity string) (Decision, error) {
	entry, ok, err := l.store.Get(ctx, identity)
	if err != nil {
		return Decision{}, fmt.Errorf("get attempt entry: %w", err)
	}
	if !ok || entry.Count < l.cfg.MaxFailures {
		return Decision{Allowed: true}, nil
	}

	remaining := entry.ResetAt.Sub(l.clock.Now())
	if remaining <= 0 {
		return Decision{Allowed: true}, nil
	}

	if l.logger != nil {
		l.logger.Warn("login attempt blocked",
			"identity", identity,
			"failures", entry.Count,
			"retry_after", remaining)
	}
	return Decision{Allowed: false, RetryAfter: remaining}, nil
}

// Record registers the outcome of a login attempt. A success wipes the entry
// so the next failure starts a fresh count; a failure creates or increments
// the entry and then imposes the fixed failure delay.
func (l *Limiter) Record(ctx context.Context, identity string, success bool) error {
	if success {
		if err := l.store.Reset(ctx, identity); err != nil {
			return fmt.Errorf("reset attempt entry: %w", err)
		}
		return nil
	}

	entry, err := l.store.Fail(ctx, identity, l.cfg.Window)
	if err != nil {
		return fmt.Errorf("record failed attempt: %w", err)
	}
	if l.logger != nil {
		l.logger.Info("failed login recorded",
			"identity", identity,
			"failures", entry.Count,
			"reset_at", entry.ResetAt)
	}

	if l.cfg.FailureDelay > 0 {
		if err := l.sleep(ctx, l.cfg.FailureDelay); err != nil {
			return err
		}
	}
	return nil
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
