package middleware

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"hash/fnv"
	"net/http"
	"os"
	"sync"
	"time"
)

const (
	// RequestIDHeader is the HTTP header used for request IDs.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128

	// idEpochMs is 2026-01-01 00:00:00 UTC.
	idEpochMs int64 = 1767225600000

	idSequenceBits = 8
	idMachineBits  = 16
	idMaxSequence  = (1 << idSequenceBits) - 1
)

type requestIDKeyType struct{}

//nolint:gochecknoglobals // context key.
var requestIDKey = requestIDKeyType{}

// idGenerator produces ordered 64-bit ids: milliseconds since idEpochMs,
// a hostname hash, and a per-millisecond sequence.
type idGenerator struct {
	mu       sync.Mutex
	machine  uint64
	sequence uint64
	last     int64
	now      func() time.Time
}

func newIDGenerator() *idGenerator {
	hostname, _ := os.Hostname()

	hash := fnv.New64a()
	_, _ = hash.Write([]byte(hostname))

	return &idGenerator{
		machine: hash.Sum64() & ((1 << idMachineBits) - 1),
		now:     time.Now,
	}
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := max(g.now().UnixMilli()-idEpochMs, g.last)

	if stamp == g.last {
		g.sequence++
		if g.sequence > idMaxSequence {
			// Borrow the next millisecond instead of spinning.
			stamp++
			g.sequence = 0
		}
	} else {
		g.sequence = 0
	}

	g.last = stamp

	id := uint64(max(stamp, 0))<<(idSequenceBits+idMachineBits) | g.machine<<idSequenceBits | g.sequence

	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], id)

	return hex.EncodeToString(buf[:])
}

// GetRequestID returns the request id stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}

	return true
}

// RequestID tags every request with an id. A well-formed incoming
// X-Request-ID is kept; anything else is replaced by a generated 16 hex digit
// id. The id is echoed in the response header and stored in the context.
func RequestID() func(http.Handler) http.Handler {
	gen := newIDGenerator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !acceptableRequestID(id) {
				id = gen.next()
			}

			r.Header.Set(RequestIDHeader, id)
			w.Header().Set(RequestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
		})
	}
}
