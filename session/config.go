package session

import "errors"

// DefaultCapacity is the number of sessions kept when none is configured.
const DefaultCapacity = 1024

// ErrInvalidCapacity is returned when the configured capacity is negative.
var ErrInvalidCapacity = errors.New("session capacity must not be negative")

// Config configures a Store.
type Config struct {
	// Capacity bounds the number of sessions held in memory.
	Capacity int `yaml:"capacity"`
	// SnapshotPath is loaded on start and written on stop when set.
	SnapshotPath string `yaml:"snapshotPath"`
	// GrowOnLoad raises Capacity when a loaded snapshot holds more sessions
	// than fit, instead of evicting the oldest ones.
	GrowOnLoad bool `yaml:"growOnLoad"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() bool {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity

		return true
	}

	return false
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return ErrInvalidCapacity
	}

	return nil
}

// Option adjusts a Config.
type Option func(*Config)

// WithCapacity sets the number of sessions kept in memory.
func WithCapacity(capacity int) Option {
	return func(cfg *Config) {
		cfg.Capacity = capacity
	}
}

// WithSnapshotPath sets the snapshot file used across restarts.
func WithSnapshotPath(path string) Option {
	return func(cfg *Config) {
		cfg.SnapshotPath = path
	}
}

// WithConfig copies every field of cfg.
func WithConfig(cfg Config) Option {
	return func(target *Config) {
		*target = cfg
	}
}
