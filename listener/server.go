package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
)

// ErrAlreadyStarted is returned by Start on a server that is already serving.
var ErrAlreadyStarted = errors.New("listener already started")

// Server owns one http.Server and its TCP listener.
type Server struct {
	name   string
	http   *http.Server
	logger *slog.Logger
	failed func(error)

	mu   sync.Mutex
	ln   net.Listener
	done chan struct{}
}

// NewServer applies defaults to cfg, validates it and prepares the server.
// failed, if non-nil, receives the error when serving stops for any reason
// other than Stop.
func NewServer(name string, handler http.Handler, cfg Config, failed func(error)) (*Server, error) {
	switch {
	case name == "":
		return nil, ErrEmptyName
	case handler == nil:
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Server{
		name: name,
		http: &http.Server{ //nolint:exhaustruct // remaining fields keep net/http defaults
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		logger: slog.Default().With("listener", name),
		failed: failed,
	}, nil
}

// Start binds the address and serves requests in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.http.Addr)
	if err != nil {
		s.logger.Error("bind failed", "address", s.http.Addr, "error", err)

		return fmt.Errorf("%w: %s: %w", ErrListenFailed, s.http.Addr, err)
	}

	s.ln = ln
	s.done = make(chan struct{})

	s.logger.Info("listener started", "address", ln.Addr().String())

	go s.serve(ln, s.done)

	return nil
}

func (s *Server) serve(ln net.Listener, done chan<- struct{}) {
	defer close(done)

	err := s.http.Serve(ln)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}

	s.logger.Error("serve failed", "error", err)

	if s.failed != nil {
		s.failed(err)
	}
}

// Stop drains in-flight requests and waits for the serve loop to return.
// Stopping a server that never started is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	s.logger.Info("listener stopping")

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown failed", "error", err)

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrShutdownFailed, ctx.Err())
	}
}

// Addr returns the bound address once started, otherwise the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}

	return s.http.Addr
}
