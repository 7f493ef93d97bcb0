package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher over a file read once at construction.
type Fetcher struct {
	filepath string
	data     []byte
}

// Option configures how the file contents are prepared.
type Option func(*options)

type options struct {
	expandEnv bool
}

// WithEnvExpansion replaces ${VAR} and $VAR references with environment
// values, so "address: ${STUDIO_ADDR}" can be set per deployment.
func WithEnvExpansion() Option {
	return func(o *options) {
		o.expandEnv = true
	}
}

// NewFetcher returns a constructor for a Fetcher reading fpath. The
// constructor form lets Fx decide when the file is read.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	var cfg options

	for _, apply := range opts {
		apply(&cfg)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		if cfg.expandEnv {
			data = []byte(os.ExpandEnv(string(data)))
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the data read at construction.
func (f *Fetcher) Fetch() ([]byte, error) {
	return append([]byte(nil), f.data...), nil
}
