package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mn2tech/studiocmd/command"
)

// ErrEmptySessionID is returned when a session id is blank.
var ErrEmptySessionID = errors.New("session id must not be empty")

// Outcome pairs a parsed command with the result of applying it.
type Outcome struct {
	Command command.Command
	Result  command.Result
}

// Status is "rejected", "help" or "applied".
func (o Outcome) Status() string {
	switch {
	case o.Result.Failed():
		return "rejected"
	case o.Result.IsHelp():
		return "help"
	default:
		return "applied"
	}
}

// Store holds overrides per session. It is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	cache      *lru.Cache[string, command.Overrides]
	capacity   int
	growOnLoad bool
	logger     *slog.Logger
}

// NewStore creates a Store from cfg. A nil logger falls back to slog.Default.
func NewStore(cfg Config, logger *slog.Logger) (*Store, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[string, command.Overrides](cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		cache:      cache,
		capacity:   cfg.Capacity,
		growOnLoad: cfg.GrowOnLoad,
		logger:     logger,
	}, nil
}

// Execute parses input and applies it to the overrides of session id. The
// stored overrides change only when the command applied; help and rejected
// commands leave them as they were.
func (s *Store) Execute(ctx context.Context, id, input string) (Outcome, error) {
	if strings.TrimSpace(id) == "" {
		return Outcome{}, ErrEmptySessionID
	}

	cmd := command.Parse(input)

	s.mu.Lock()

	current, _ := s.cache.Get(id)
	result := command.Apply(current, cmd)

	outcome := Outcome{Command: cmd, Result: result}
	if outcome.Status() == "applied" {
		s.cache.Add(id, result.Overrides.Clone())
	}

	s.mu.Unlock()

	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("session", id),
		slog.String("type", string(cmd.Type())),
		slog.String("status", outcome.Status()),
	}

	if result.Failed() {
		level = slog.LevelWarn

		attrs = append(attrs, slog.String("error", result.Err))
	}

	s.logger.LogAttrs(ctx, level, "command executed", attrs...)

	return outcome, nil
}

// Get returns a copy of the overrides of session id and whether it exists.
func (s *Store) Get(id string) (command.Overrides, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, ok := s.cache.Get(id)
	if !ok {
		return command.Overrides{}, false
	}

	return overrides.Clone(), true
}

// Put replaces the overrides of session id.
func (s *Store) Put(id string, overrides command.Overrides) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Add(id, overrides.Clone())

	return nil
}

// Delete forgets session id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Remove(id)
}

// Len returns the number of sessions held.
func (s *Store) Len() int {
	return s.cache.Len()
}

// IDs returns the session ids from least to most recently used.
func (s *Store) IDs() []string {
	return s.cache.Keys()
}

// Reserve grows the capacity so that n sessions can be added to the ones
// held now without evicting any of them.
func (s *Store) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.growLocked(s.cache.Len() + n)
}

func (s *Store) growLocked(size int) {
	if size <= s.capacity {
		return
	}

	s.cache.Resize(size)
	s.capacity = size
}
