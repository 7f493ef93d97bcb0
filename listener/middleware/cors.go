package middleware

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const defaultCORSMaxAge = 600

//nolint:gochecknoglobals // fixed header sets for the studio API.
var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}, ", ")
	corsHeaders = strings.Join([]string{"Content-Type", RequestIDHeader}, ", ")
)

// CORS lets browsers on the listed origins call the API. Origins are bare
// hostnames ("studio.example.com") matched against the hostname of the Origin
// header; "*" allows every origin. Preflight OPTIONS requests from an allowed
// origin are answered with 204 and never reach next. An empty list disables
// CORS headers entirely.
func CORS(origins ...string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(origins, "*")
	maxAge := strconv.Itoa(defaultCORSMaxAge)

	allowed := func(origin string) bool {
		if wildcard {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil || u.Hostname() == "" {
			return false
		}

		return slices.Contains(origins, u.Hostname())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || len(origins) == 0 || !allowed(origin) {
				next.ServeHTTP(w, r)

				return
			}

			header := w.Header()
			header.Add("Vary", "Origin")

			if wildcard {
				header.Set("Access-Control-Allow-Origin", "*")
			} else {
				header.Set("Access-Control-Allow-Origin", origin)
			}

			header.Set("Access-Control-Expose-Headers", RequestIDHeader)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				header.Set("Access-Control-Allow-Methods", corsMethods)
				header.Set("Access-Control-Allow-Headers", corsHeaders)
				header.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
