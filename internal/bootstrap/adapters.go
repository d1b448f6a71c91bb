package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/x-ordo/WPaymentManager-sub006/config"
	"github.com/x-ordo/WPaymentManager-sub006/internal/gateway"
	"github.com/x-ordo/WPaymentManager-sub006/internal/observability/statsd"
	"github.com/x-ordo/WPaymentManager-sub006/internal/ratelimit"
	"github.com/x-ordo/WPaymentManager-sub006/internal/service"
	"github.com/x-ordo/WPaymentManager-sub006/internal/session"
	"github.com/x-ordo/WPaymentManager-sub006/internal/viewcache"
)

// ServiceContainer holds the constructed services and the infrastructure
// handles that need closing on shutdown.
type ServiceContainer struct {
	Actions *service.ActionService
	Refresh *service.RefreshHub

	redisClient *redis.Client
	metrics     *statsd.Client
}

// Close releases infrastructure handles. Safe to call on a partially
// constructed container.
func (c *ServiceContainer) Close(logger *slog.Logger) {
	if c.metrics != nil {
		if err := c.metrics.Close(); err != nil && logger != nil {
			logger.Error("close statsd client failed", "error", err)
		}
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil && logger != nil {
			logger.Error("close redis failed", "error", err)
		}
	}
}

// BuildServices constructs the full service graph from configuration.
func BuildServices(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	container := &ServiceContainer{}

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		container.redisClient = client
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		container.Close(logger)
		return nil, fmt.Errorf("statsd client: %w", err)
	}
	container.metrics = metrics

	transport, err := buildTransport(cfg, logger)
	if err != nil {
		container.Close(logger)
		return nil, err
	}

	sessions := session.NewManager()
	limiter := buildLimiter(cfg, container.redisClient, logger)

	auth := gateway.NewAuthenticator(gateway.AuthenticatorOptions{
		Transport: transport,
		Sessions:  sessions,
		Limiter:   limiter,
		Credentials: gateway.Credentials{
			Identity: cfg.Auth.OperatorID,
			Secret:   cfg.Auth.OperatorPW,
		},
		Logger:  logger,
		Metrics: metrics,
	})

	dispatcher := gateway.NewDispatcher(gateway.DispatcherOptions{
		Transport: transport,
		Sessions:  sessions,
		Auth:      auth,
		Config: gateway.DispatcherConfig{
			ThrottleWait: cfg.Gateway.ThrottleWait,
			MaxAttempts:  cfg.Gateway.MaxAttempts,
		},
		Logger:  logger,
		Metrics: metrics,
	})

	container.Refresh = service.NewRefreshHub()
	container.Actions = service.NewActionService(service.ActionServiceOptions{
		Dispatcher: dispatcher,
		Views:      buildViewCache(container.redisClient),
		Refresh:    container.Refresh,
		Logger:     logger,
		CacheTTL:   cfg.Redis.CacheTTL,
	})

	return container, nil
}

func buildTransport(cfg *config.AppConfig, logger *slog.Logger) (gateway.Transport, error) {
	if cfg.Gateway.UseFixture {
		logger.Warn("gateway fixture transport active, no real requests will be sent")
		return gateway.NewFixtureTransport(), nil
	}
	transport, err := gateway.NewHTTPTransport(gateway.HTTPConfig{
		BaseURL: cfg.Gateway.BaseURL,
		UseTLS:  cfg.Gateway.UseTLS,
		Timeout: cfg.Gateway.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway transport: %w", err)
	}
	return transport, nil
}

func buildLimiter(cfg *config.AppConfig, redisClient *redis.Client, logger *slog.Logger) *ratelimit.Limiter {
	var store ratelimit.AttemptStore
	if redisClient != nil {
		store = ratelimit.NewRedisStore(redisClient)
	} else {
		store = ratelimit.NewMemoryStore(nil)
	}
	return ratelimit.NewLimiter(ratelimit.LimiterOptions{
		Store: store,
		Config: ratelimit.Config{
			MaxFailures:  int64(cfg.Auth.LockoutMaxFailures),
			Window:       cfg.Auth.LockoutWindow,
			FailureDelay: cfg.Auth.LockoutDelay,
		},
		Logger: logger,
	})
}

func buildViewCache(redisClient *redis.Client) viewcache.Store {
	if redisClient != nil {
		return viewcache.NewRedisStore(redisClient)
	}
	return viewcache.NewMemoryStore(nil)
}
