// Package api serves the dashboard command language over HTTP: parsing,
// per-session execution and overrides documents.
package api

import (
	"errors"
	"time"

	"github.com/mn2tech/studiocmd/listener/middleware"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 10 * time.Second

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("api: handler name must not be empty")

// ErrNegativeBodyLimit is returned when MaxBodyBytes is negative.
var ErrNegativeBodyLimit = errors.New("api: max body bytes must not be negative")

// ErrNegativeTimeout is returned when Timeout is negative.
var ErrNegativeTimeout = errors.New("api: timeout must not be negative")

// ErrNegativeRateLimit is returned when RateLimit or RateBurst is negative.
var ErrNegativeRateLimit = errors.New("api: rate limit must not be negative")

// Config controls the middleware in front of the API routes.
// A zero RateLimit disables rate limiting; an empty CORSOrigins disables CORS.
type Config struct {
	MaxBodyBytes int64         `yaml:"maxBodyBytes"`
	Timeout      time.Duration `yaml:"timeout"`
	CORSOrigins  []string      `yaml:"corsOrigins"`
	RateLimit    float64       `yaml:"rateLimit"`
	RateBurst    int           `yaml:"rateBurst"`
}

// SetDefaults fills unset fields and reports whether anything changed.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = middleware.DefaultMaxRequestBytes
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
		changed = true
	}

	if c.RateLimit > 0 && c.RateBurst == 0 {
		c.RateBurst = max(int(c.RateLimit), 1)
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	switch {
	case c.MaxBodyBytes < 0:
		return ErrNegativeBodyLimit
	case c.Timeout < 0:
		return ErrNegativeTimeout
	case c.RateLimit < 0, c.RateBurst < 0:
		return ErrNegativeRateLimit
	}

	return nil
}

// Option configures the API module.
type Option func(*Config)

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(limit int64) Option {
	return func(cfg *Config) {
		cfg.MaxBodyBytes = limit
	}
}

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithCORSOrigins allows browser calls from the given hostnames.
func WithCORSOrigins(origins ...string) Option {
	return func(cfg *Config) {
		cfg.CORSOrigins = origins
	}
}

// WithRateLimit enables a global token bucket.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(cfg *Config) {
		cfg.RateLimit = requestsPerSecond
		cfg.RateBurst = burst
	}
}

// WithConfig copies every field of cfg.
func WithConfig(cfg Config) Option {
	return func(target *Config) {
		*target = cfg
	}
}
