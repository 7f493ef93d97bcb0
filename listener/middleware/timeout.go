package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout is used when Timeout is given a non-positive duration.
const DefaultTimeout = 10 * time.Second

// Timeout answers 503 with a JSON error when a handler runs longer than duration.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	if duration <= 0 {
		slog.Warn("middleware: timeout must be positive, using default",
			"provided", duration, "default", DefaultTimeout)

		duration = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		timeout := http.TimeoutHandler(next, duration, `{"error":"request timed out"}`)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timeout.ServeHTTP(&jsonUnavailableWriter{ResponseWriter: w}, r)
		})
	}
}

// jsonUnavailableWriter labels a 503 without a Content-Type as JSON.
// http.TimeoutHandler writes its body with no Content-Type, which net/http
// would otherwise sniff as text/plain.
type jsonUnavailableWriter struct {
	http.ResponseWriter
}

func (w *jsonUnavailableWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *jsonUnavailableWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
