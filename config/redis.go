package config

import "time"

// RedisConfig contains Redis configuration for the lockout store and the
// view cache. When disabled both fall back to in-process stores, which is
// fine for the single-instance deployments this service usually runs as.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// CacheTTL is the TTL for cached gateway list views.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}

// Sanitize applies guardrails to Redis configuration values.
func (r *RedisConfig) Sanitize() {
	if r.Addr == "" {
		r.Enabled = false
	}
	if r.CacheTTL <= 0 {
		r.CacheTTL = 30 * time.Second
	}
}
