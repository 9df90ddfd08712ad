// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the login gateway.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Required;
//     the process refuses to start without it.
//   - TokenTTL: session token lifetime, also the session cookie max-age.
//   - ClockSkewLeeway: tolerance applied when checking token expiry.
//   - DatabaseDSN: PostgreSQL DSN for the credential store; empty selects
//     the in-memory fixture store.
//   - BcryptCost: cost factor for password hashing.
//   - CookieSecure: mark the session cookie Secure (set for TLS deployments).
//   - Mode: "debug" or "release"; controls gin mode and log format.
type Config struct {
	Addr            string
	SecretKey       string
	TokenTTL        time.Duration
	ClockSkewLeeway time.Duration
	DatabaseDSN     string
	BcryptCost      int
	CookieSecure    bool
	Mode            string
}

// LoadDefaults populates Config with development defaults. The secret key
// has no default on purpose.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.SecretKey = ""
	c.TokenTTL = 60 * time.Minute
	c.ClockSkewLeeway = 0
	c.DatabaseDSN = ""
	c.BcryptCost = 12
	c.CookieSecure = false
	c.Mode = "debug"
}

// Validate checks settings the server cannot run without. A missing secret
// key is fatal: serving traffic with an empty signing key would make every
// session forgeable.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key is required (set SECRET_KEY)")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
