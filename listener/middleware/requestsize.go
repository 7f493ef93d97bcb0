package middleware

import (
	"log/slog"
	"net/http"
)

// DefaultMaxRequestBytes caps request bodies when no positive limit is given.
const DefaultMaxRequestBytes int64 = 64 << 10

// MaxRequestSize limits request bodies with http.MaxBytesReader. Reading past
// the limit fails with *http.MaxBytesError and handlers answer 413.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		slog.Warn("middleware: request size limit must be positive, using default",
			"provided", limit, "default", DefaultMaxRequestBytes)

		limit = DefaultMaxRequestBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
