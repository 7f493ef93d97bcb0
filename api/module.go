package api

import (
	"fmt"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides the API http.Handler tagged
// with name, ready for a listener of the same name. Options, when given,
// become the api Config; otherwise Config must be provided externally.
// The module needs a *session.Store and a *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(cfg))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(NewHandler, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
	))

	return fx.Module("api", moduleOpts...)
}
