package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/mn2tech/studiocmd/command"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// ErrUnknownFormat is returned for a --format other than json or yaml.
var ErrUnknownFormat = errors.New("format must be json or yaml")

func checkFormat(format string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

func renderOverrides(w io.Writer, overrides command.Overrides, format string) error {
	var (
		out []byte
		err error
	)

	switch format {
	case formatYAML:
		if overrides.IsZero() {
			out = []byte("{}\n")

			break
		}

		out, err = yaml.Marshal(overrides)
	default:
		out, err = json.MarshalIndent(overrides, "", "  ")
		out = append(out, '\n')
	}

	if err != nil {
		return fmt.Errorf("rendering overrides: %w", err)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck
}
