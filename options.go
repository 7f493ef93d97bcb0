package studio

import (
	"io"

	"github.com/mn2tech/studiocmd/api"
	"github.com/mn2tech/studiocmd/config"
	"github.com/mn2tech/studiocmd/listener"
	"github.com/mn2tech/studiocmd/logging"
	"github.com/mn2tech/studiocmd/session"

	"go.uber.org/fx"
)

// ListenerName names the listener serving the command API and tags its handler.
const ListenerName = "studio"

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	Log       logging.LoggerConfig
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithHTTPListener adds a named HTTP listener module. The name tags both the
// http.Handler it serves and its Config.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level: "debug", "info", "warn" or "error".
// Anything else logs at info.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.Log.Level = level
	}
}

// WithLogConfig replaces the whole logger configuration.
func WithLogConfig(cfg logging.LoggerConfig) Option {
	return func(opts *Options) {
		opts.Log = cfg
	}
}

// WithLogOutput sets where logs go when no log file is configured.
// The default is os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithStudio wires the complete command service from cfg: logging, the
// session store, the API handler and the listener named ListenerName.
func WithStudio(cfg config.Studio) Option {
	return func(opts *Options) {
		WithLogConfig(cfg.Log)(opts)
		WithModules(
			session.NewModule(session.WithConfig(cfg.Session)),
			api.NewModule(ListenerName, api.WithConfig(cfg.API)),
		)(opts)
		WithHTTPListener(ListenerName, listener.WithConfig(cfg.Listener))(opts)
	}
}
