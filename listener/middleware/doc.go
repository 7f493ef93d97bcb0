// Package middleware provides the HTTP middleware used in front of the studio API.
//
// Every constructor returns a func(http.Handler) http.Handler. Chain composes
// them so that the first middleware listed is the outermost.
package middleware

import "net/http"

// Chain wraps handler with middlewares, first listed outermost.
func Chain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}
