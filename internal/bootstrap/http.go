package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/x-ordo/WPaymentManager-sub006/config"
	"github.com/x-ordo/WPaymentManager-sub006/internal/httpapi"
)

// StartHTTPServer creates the HTTP server and starts serving in a
// goroutine. Listen errors other than a clean shutdown land on errCh.
func StartHTTPServer(cfg *config.AppConfig, services *ServiceContainer, logger *slog.Logger, errCh chan<- error) *http.Server {
	router := httpapi.NewRouter(httpapi.RouterServices{
		Actions: services.Actions,
		Refresh: services.Refresh,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return srv
}

// ShutdownHTTPServer drains in-flight requests within the configured
// shutdown timeout.
func ShutdownHTTPServer(srv *http.Server, cfg *config.AppConfig, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
