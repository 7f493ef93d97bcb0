package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mn2tech/studiocmd/command"
)

const snapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot was written by an
// incompatible version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// ErrInvalidSnapshot is returned when a snapshot holds a session that no
// command could have produced.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

type snapshot struct {
	Version  int             `msgpack:"version"`
	Sessions []snapshotEntry `msgpack:"sessions"`
}

type snapshotEntry struct {
	ID        string            `msgpack:"id"`
	Overrides command.Overrides `msgpack:"overrides"`
}

// Save writes every session to w as zstd-compressed msgpack, least recently
// used first so that Load restores the same eviction order.
func (s *Store) Save(w io.Writer) error {
	s.mu.Lock()

	snap := snapshot{Version: snapshotVersion}
	for _, id := range s.cache.Keys() {
		overrides, ok := s.cache.Peek(id)
		if ok {
			snap.Sessions = append(snap.Sessions, snapshotEntry{ID: id, Overrides: overrides.Clone()})
		}
	}

	s.mu.Unlock()

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	err = msgpack.NewEncoder(encoder).Encode(&snap)
	if err != nil {
		_ = encoder.Close()

		return fmt.Errorf("encoding snapshot: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("flushing snapshot: %w", err)
	}

	return nil
}

// Load reads a snapshot written by Save and adds its sessions to the store.
// Sessions already present with the same id are replaced. A snapshot with any
// invalid session is rejected as a whole and leaves the store untouched.
func (s *Store) Load(r io.Reader) error {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("creating zstd reader: %w", err)
	}
	defer decoder.Close()

	var snap snapshot

	err = msgpack.NewDecoder(decoder).Decode(&snap)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}

	for _, entry := range snap.Sessions {
		if strings.TrimSpace(entry.ID) == "" {
			return fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrEmptySessionID)
		}

		err = command.ValidateOverrides(entry.Overrides)
		if err != nil {
			return fmt.Errorf("%w: session %q: %w", ErrInvalidSnapshot, entry.ID, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.growOnLoad {
		s.growLocked(s.cache.Len() + len(snap.Sessions))
	}

	for _, entry := range snap.Sessions {
		s.cache.Add(entry.ID, entry.Overrides)
	}

	return nil
}

// SaveFile writes a snapshot to path, replacing it atomically.
func (s *Store) SaveFile(path string) error {
	cleanPath := filepath.Clean(path)

	tmp, err := os.CreateTemp(filepath.Dir(cleanPath), filepath.Base(cleanPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}

	tmpName := tmp.Name()

	err = s.Save(tmp)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("closing temp snapshot: %w", err)
	}

	err = os.Rename(tmpName, cleanPath)
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("replacing snapshot %q: %w", cleanPath, err)
	}

	return nil
}

// LoadFile loads the snapshot at path. A missing file is not an error.
func (s *Store) LoadFile(path string) error {
	cleanPath := filepath.Clean(path)

	file, err := os.Open(cleanPath) // #nosec G304 -- operator supplied snapshot path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("opening snapshot %q: %w", cleanPath, err)
	}
	defer file.Close()

	return s.Load(file)
}
