package config

import (
	"errors"
	"fmt"

	"github.com/mn2tech/studiocmd/api"
	filefetcher "github.com/mn2tech/studiocmd/config/fetcher/file"
	yamlparser "github.com/mn2tech/studiocmd/config/parser/yaml"
	"github.com/mn2tech/studiocmd/listener"
	"github.com/mn2tech/studiocmd/logging"
	"github.com/mn2tech/studiocmd/session"
)

// Studio is the configuration file of the studio service.
type Studio struct {
	Log      logging.LoggerConfig `yaml:"log"`
	Listener listener.Config      `yaml:"listener"`
	API      api.Config           `yaml:"api"`
	Session  session.Config       `yaml:"session"`
}

// Default returns a Studio with every section defaulted, as used when no
// configuration file is given.
func Default() Studio {
	var cfg Studio

	cfg.SetDefaults()

	return cfg
}

// SetDefaults defaults every section and reports whether anything changed.
func (s *Studio) SetDefaults() bool {
	changed := s.Log.SetDefaults()
	changed = s.Listener.SetDefaults() || changed
	changed = s.API.SetDefaults() || changed
	changed = s.Session.SetDefaults() || changed

	return changed
}

// Validate validates every section and reports all failures at once.
func (s *Studio) Validate() error {
	var errs []error

	for _, section := range []struct {
		name string
		v    Validator
	}{
		{"log", &s.Log},
		{"listener", &s.Listener},
		{"api", &s.API},
		{"session", &s.Session},
	} {
		err := section.v.Validate()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section.name, err))
		}
	}

	return errors.Join(errs...)
}

// Load reads the Studio configuration at path.
func Load(path string) (*Studio, error) {
	fetcher, err := filefetcher.NewFetcher(path, filefetcher.WithEnvExpansion())()
	if err != nil {
		return nil, err
	}

	return Provider(&Studio{}, "")(yamlparser.NewParser(yamlparser.WithStrict()), fetcher)
}
