package config

import "time"

// AuthConfig contains the fixed operator credentials and the login
// lockout policy.
type AuthConfig struct {
	// OperatorID and OperatorPW are the single gateway account this
	// deployment operates as. The gateway has no multi-user concept.
	OperatorID string `env:"OPERATOR_ID" envDefault:""`
	OperatorPW string `env:"OPERATOR_PW" envDefault:""`

	// Lockout policy for failed logins.
	LockoutMaxFailures int           `env:"LOCKOUT_MAX_FAILURES" envDefault:"5"`
	LockoutWindow      time.Duration `env:"LOCKOUT_WINDOW"       envDefault:"5m"`
	LockoutDelay       time.Duration `env:"LOCKOUT_DELAY"        envDefault:"1s"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.LockoutMaxFailures < 1 {
		a.LockoutMaxFailures = 5
	}
	if a.LockoutWindow <= 0 {
		a.LockoutWindow = 5 * time.Minute
	}
	if a.LockoutDelay < 0 {
		a.LockoutDelay = 0
	}
}
