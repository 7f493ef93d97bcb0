package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRequestID(t *testing.T, incoming string) (string, string) {
	t.Helper()

	var seen string

	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return seen, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	seen, echoed := captureRequestID(t, "")

	require.Len(t, seen, 16)
	assert.Equal(t, seen, echoed)
	assert.Equal(t, -1, strings.IndexFunc(seen, func(r rune) bool {
		return !strings.ContainsRune("0123456789abcdef", r)
	}))
}

func TestRequestID_Incoming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		kept     bool
	}{
		{"plain", "dashboard-42", true},
		{"max length", strings.Repeat("a", maxRequestIDLength), true},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"control char", "bad\x01id", false},
		{"non ascii", "idé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, echoed := captureRequestID(t, tt.incoming)

			assert.Equal(t, seen, echoed)

			if tt.kept {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
				assert.Len(t, seen, 16)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetRequestID(t.Context()))
}

func TestIDGenerator_Ordered(t *testing.T) {
	t.Parallel()

	fixed := time.UnixMilli(idEpochMs + 1000)
	gen := newIDGenerator()
	gen.now = func() time.Time { return fixed }

	prev := ""

	// Overflow the per-millisecond sequence to cover the borrow path.
	for range idMaxSequence + 10 {
		id := gen.next()
		assert.Greater(t, id, prev)

		prev = id
	}
}

func TestIDGenerator_ClockBackwards(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(idEpochMs + 5000)
	gen := newIDGenerator()
	gen.now = func() time.Time { return now }

	first := gen.next()

	now = now.Add(-time.Second)

	assert.Greater(t, gen.next(), first)
}
