package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAfterSanitize(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, 5100*time.Millisecond, cfg.Gateway.ThrottleWait)
	assert.Equal(t, 3, cfg.Gateway.MaxAttempts)
	assert.True(t, cfg.Gateway.UseFixture, "no base URL configured should force fixture mode")
	assert.Equal(t, 5, cfg.Auth.LockoutMaxFailures)
	assert.Equal(t, 5*time.Minute, cfg.Auth.LockoutWindow)
	assert.Equal(t, time.Second, cfg.Auth.LockoutDelay)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestGatewaySanitizeGuardrails(t *testing.T) {
	g := GatewayConfig{
		BaseURL:      "  https://pg.example.co.kr/ ",
		Timeout:      -1,
		ThrottleWait: 0,
		MaxAttempts:  0,
	}
	g.Sanitize()

	assert.Equal(t, "https://pg.example.co.kr", g.BaseURL)
	assert.Equal(t, 30*time.Second, g.Timeout)
	assert.Equal(t, 5100*time.Millisecond, g.ThrottleWait)
	assert.Equal(t, 3, g.MaxAttempts)
	assert.False(t, g.UseFixture, "configured base URL keeps live transport")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "https://pg.example.co.kr")
	t.Setenv("GATEWAY_MAX_ATTEMPTS", "5")
	t.Setenv("LOCKOUT_WINDOW", "10m")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://pg.example.co.kr", cfg.Gateway.BaseURL)
	assert.Equal(t, 5, cfg.Gateway.MaxAttempts)
	assert.False(t, cfg.Gateway.UseFixture)
	assert.Equal(t, 10*time.Minute, cfg.Auth.LockoutWindow)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestRedisSanitizeDisablesWithoutAddr(t *testing.T) {
	r := RedisConfig{Enabled: true, Addr: ""}
	r.Sanitize()
	assert.False(t, r.Enabled)
	assert.Equal(t, 30*time.Second, r.CacheTTL)
}

func TestMetricsRequireAddress(t *testing.T) {
	m := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "   "}
	m.Sanitize()
	assert.False(t, m.IsEnabled())
}
