// Command wpmgw runs the payment gateway integration service: a JSON API
// the admin dashboard calls, backed by a resilient client for the legacy
// gateway's CGI endpoints.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/x-ordo/WPaymentManager-sub006/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if err = bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting",
		"addr", cfg.HTTP.Addr,
		"fixture", cfg.Gateway.UseFixture,
		"redis", cfg.Redis.Enabled,
		"metrics", cfg.Observability.Metrics.IsEnabled(),
	)

	services, err := bootstrap.BuildServices(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer services.Close(logger)

	errCh := make(chan error, 1)
	srv := bootstrap.StartHTTPServer(&cfg, services, logger, errCh)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-errCh:
		return err
	case sig := <-stop:
		logger.InfoContext(ctx, "shutting down", "signal", sig.String())
	}

	bootstrap.ShutdownHTTPServer(srv, &cfg, logger)
	return nil
}
