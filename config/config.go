package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes data, or the section at a colon separated path such as
// "api:corsOrigins", into target. An empty path means the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by configuration sections that can check themselves.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by configuration sections with default values.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches, parses, defaults and validates
// target, in that order. The returned function has the shape of an Fx
// constructor.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Debug("configuration defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err := validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
