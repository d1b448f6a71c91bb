// Package bootstrap wires configuration, infrastructure clients, and
// services together for the entrypoint.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/x-ordo/WPaymentManager-sub006/config"
)

// InitLogger initializes the structured logger.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ValidateConfig checks the invariants LoadConfig cannot default away.
func ValidateConfig(cfg *config.AppConfig) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if !cfg.Gateway.UseFixture && cfg.Gateway.BaseURL == "" {
		return errors.New("GATEWAY_BASE_URL is required outside fixture mode")
	}
	if !cfg.Gateway.UseFixture && (cfg.Auth.OperatorID == "" || cfg.Auth.OperatorPW == "") {
		return errors.New("OPERATOR_ID and OPERATOR_PW are required outside fixture mode")
	}
	return nil
}
