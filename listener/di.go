package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NewModule creates an Fx module serving the http.Handler tagged with name.
// Options, when given, become the listener Config; otherwise a Config tagged
// with the same name must already be in the container. A serve failure shuts
// the application down with exit code 1.
//
//nolint:ireturn // Fx modules are exposed as fx.Option
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:%q`, name)

	var parts []fx.Option

	if len(opts) > 0 {
		var cfg Config
		for _, apply := range opts {
			apply(&cfg)
		}

		parts = append(parts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	register := func(lc fx.Lifecycle, sd fx.Shutdowner, handler http.Handler, cfg Config) error {
		onFailure := func(serveErr error) {
			if err := sd.Shutdown(fx.ExitCode(1)); err != nil {
				slog.Error("listener could not stop the application", "listener", name, "cause", serveErr, "error", err)
			}
		}

		srv, err := NewServer(name, handler, cfg, onFailure)
		if err != nil {
			return fmt.Errorf("listener %s: %w", name, err)
		}

		lc.Append(fx.StartStopHook(srv.Start, srv.Stop))

		return nil
	}

	parts = append(parts, fx.Invoke(fx.Annotate(register, fx.ParamTags("", "", tag, tag))))

	return fx.Module(name, parts...)
}
