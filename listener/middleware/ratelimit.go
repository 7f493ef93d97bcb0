package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type tokenBucket struct {
	mu     sync.Mutex
	tokens float64
	burst  float64
	rate   float64
	last   time.Time
	now    func() time.Time
}

func newTokenBucket(rate float64, burst int, now func() time.Time) *tokenBucket {
	return &tokenBucket{
		tokens: float64(burst),
		burst:  float64(burst),
		rate:   rate,
		last:   now(),
		now:    now,
	}
}

// take spends one token or reports how long until one is available.
func (b *tokenBucket) take() (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	elapsed := max(0, now.Sub(b.last).Seconds())
	b.tokens = math.Min(b.burst, b.tokens+elapsed*b.rate)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--

		return true, 0
	}

	return false, time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
}

// RateLimit applies one global token bucket to every request. Rejected
// requests get 429 with a JSON error and a Retry-After header in whole seconds.
// Non-positive arguments fall back to 1 request per second and a burst of 1.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	return rateLimit(requestsPerSecond, burst, time.Now)
}

func rateLimit(requestsPerSecond float64, burst int, now func() time.Time) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		slog.Warn("middleware: requestsPerSecond must be positive, using default",
			"provided", requestsPerSecond, "default", 1.0)

		requestsPerSecond = 1
	}

	if burst <= 0 {
		slog.Warn("middleware: burst must be positive, using default", "provided", burst, "default", 1)

		burst = 1
	}

	bucket := newTokenBucket(requestsPerSecond, burst, now)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := bucket.take()
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(max(int(math.Ceil(wait.Seconds())), 1)))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many requests"}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
