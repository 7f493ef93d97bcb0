// Package studio boots the dashboard command service: an Fx application with
// a JSON logger, the session store, the command API and its HTTP listener.
package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mn2tech/studiocmd/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// ErrAbnormalExit is returned by Run when a module shut the application down
// with a non-zero exit code.
var ErrAbnormalExit = errors.New("studio exited abnormally")

// App is a configured Fx application.
type App struct {
	app *fx.App
}

// NewApp creates an App from opts.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	fallback := options.LogOutput
	if fallback == nil {
		fallback = os.Stderr
	}

	output := logging.Output(options.Log, fallback)
	logger := logging.NewLogger(options.Log, output)
	slog.SetDefault(logger)

	fxOpts := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(options.Log),
		fx.Supply(logger),
	}

	if closer, ok := output.(io.Closer); ok && options.Log.File != "" {
		fxOpts = append(fxOpts, fx.Invoke(func(lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.StopHook(closer.Close))
		}))
	}

	return fx.New(append(fxOpts, options.Modules...)...)
}

func (app *App) ready() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return nil
}

// Start starts every module within the Fx start timeout.
func (app *App) Start() error {
	if err := app.ready(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.app.StartTimeout())
	defer cancel()

	if err := app.app.Start(ctx); err != nil {
		return fmt.Errorf("starting studio: %w", err)
	}

	return nil
}

// Run starts the application and blocks until ctx is done, an OS signal
// arrives or a module requests shutdown. A shutdown requested with a
// non-zero exit code is reported as ErrAbnormalExit.
func (app *App) Run(ctx context.Context) error {
	if err := app.Start(); err != nil {
		return err
	}

	code := 0

	select {
	case <-ctx.Done():
	case signal := <-app.app.Wait():
		code = signal.ExitCode
	}

	if err := app.Stop(); err != nil {
		return err
	}

	if code != 0 {
		return fmt.Errorf("%w: exit code %d", ErrAbnormalExit, code)
	}

	return nil
}

// Stop stops every module within the Fx stop timeout.
func (app *App) Stop() error {
	if err := app.ready(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.app.StopTimeout())
	defer cancel()

	if err := app.app.Stop(ctx); err != nil {
		return fmt.Errorf("stopping studio: %w", err)
	}

	return nil
}

// Err reports a wiring error found while building the application.
func (app *App) Err() error {
	if err := app.ready(); err != nil {
		return err
	}

	return app.app.Err() //nolint:wrapcheck // fx errors already name the failing constructor
}
