package config

import (
	"strings"
	"time"
)

// GatewayConfig contains the legacy payment gateway endpoint and dispatch
// configuration.
type GatewayConfig struct {
	// BaseURL is the root of the gateway's CGI endpoints,
	// e.g. "https://pg.example.co.kr".
	BaseURL string `env:"GATEWAY_BASE_URL" envDefault:""`

	// UseTLS selects https when BaseURL carries no scheme of its own.
	UseTLS bool `env:"GATEWAY_USE_TLS" envDefault:"true"`

	// Timeout bounds a single gateway round trip.
	Timeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`

	// ThrottleWait is how long to wait before retrying a throttled request.
	ThrottleWait time.Duration `env:"GATEWAY_THROTTLE_WAIT" envDefault:"5100ms"`

	// MaxAttempts caps round trips per dispatch, first attempt included.
	MaxAttempts int `env:"GATEWAY_MAX_ATTEMPTS" envDefault:"3"`

	// UseFixture serves scripted gateway responses instead of real HTTP.
	// Defaults on in development mode when no base URL is configured.
	UseFixture bool `env:"GATEWAY_USE_FIXTURE" envDefault:"false"`
}

// Sanitize applies guardrails to gateway configuration values.
func (g *GatewayConfig) Sanitize() {
	g.BaseURL = strings.TrimRight(strings.TrimSpace(g.BaseURL), "/")
	if g.Timeout <= 0 {
		g.Timeout = 30 * time.Second
	}
	if g.ThrottleWait <= 0 {
		g.ThrottleWait = 5100 * time.Millisecond
	}
	if g.MaxAttempts < 1 {
		g.MaxAttempts = 3
	}
	if g.BaseURL == "" {
		g.UseFixture = true
	}
}
