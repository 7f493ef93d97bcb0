package api_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mn2tech/studiocmd/api"
	"github.com/mn2tech/studiocmd/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_ProvidesNamedHandler(t *testing.T) {
	t.Parallel()

	var handler http.Handler

	app := fxtest.New(t,
		fx.Supply(slog.New(slog.DiscardHandler)),
		session.NewModule(session.WithCapacity(4)),
		api.NewModule("studio", api.WithCORSOrigins("localhost")),
		fx.Invoke(fx.Annotate(func(h http.Handler) { handler = h }, fx.ParamTags(`name:"studio"`))),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewModule_ExternalConfig(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(slog.New(slog.DiscardHandler), api.Config{MaxBodyBytes: -1}),
		session.NewModule(session.WithCapacity(4)),
		api.NewModule("studio"),
		fx.Invoke(fx.Annotate(func(http.Handler) {}, fx.ParamTags(`name:"studio"`))),
	)

	require.ErrorIs(t, app.Err(), api.ErrNegativeBodyLimit)
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(api.NewModule(""), fx.NopLogger)
	assert.ErrorIs(t, app.Err(), api.ErrEmptyName)
}
