package listener

import "time"

// Option defines a function type for configuring an HTTP listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithReadHeaderTimeout sets how long a client may take to send request headers.
func WithReadHeaderTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.ReadHeaderTimeout = timeout
	}
}

// WithConfig copies every field of cfg.
func WithConfig(cfg Config) Option {
	return func(target *Config) {
		*target = cfg
	}
}
