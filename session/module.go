package session

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a *Store.
// If any options are passed the module supplies Config from them; otherwise
// Config must be provided externally. When Config.SnapshotPath is set the
// snapshot is loaded on start and saved on stop.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(cfg))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(NewStore),
		fx.Invoke(registerSnapshotHooks),
	)

	return fx.Module("session", moduleOpts...)
}

func registerSnapshotHooks(lifecycle fx.Lifecycle, store *Store, cfg Config, logger *slog.Logger) {
	if cfg.SnapshotPath == "" {
		return
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			err := store.LoadFile(cfg.SnapshotPath)
			if err != nil {
				return err
			}

			logger.Info("session snapshot loaded", "path", cfg.SnapshotPath, "sessions", store.Len())

			return nil
		},
		OnStop: func(context.Context) error {
			err := store.SaveFile(cfg.SnapshotPath)
			if err != nil {
				logger.Error("failed to save session snapshot", "path", cfg.SnapshotPath, "error", err)

				return err
			}

			logger.Info("session snapshot saved", "path", cfg.SnapshotPath, "sessions", store.Len())

			return nil
		},
	})
}
