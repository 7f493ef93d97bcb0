package command

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidOverrides is returned when an overrides document breaks the schema.
var ErrInvalidOverrides = errors.New("invalid overrides document")

const overridesSchemaURL = "overrides.schema.json"

//go:embed overrides.schema.json
var overridesSchemaJSON []byte

//nolint:gochecknoglobals // compiled once on first use.
var overridesSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(overridesSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decode overrides schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(overridesSchemaURL, doc)
	if err != nil {
		return nil, fmt.Errorf("add overrides schema: %w", err)
	}

	schema, err := compiler.Compile(overridesSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile overrides schema: %w", err)
	}

	return schema, nil
})

// OverridesSchema returns the JSON Schema that stored overrides documents follow.
func OverridesSchema() []byte {
	return append([]byte(nil), overridesSchemaJSON...)
}

// ValidateOverridesJSON checks data against the overrides schema and decodes
// it. Documents that hold a value no command could produce, such as an
// unknown grain or a Top N limit of 500, are rejected with ErrInvalidOverrides.
func ValidateOverridesJSON(data []byte) (Overrides, error) {
	schema, err := overridesSchema()
	if err != nil {
		return Overrides{}, err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}

	err = schema.Validate(instance)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}

	var overrides Overrides

	err = json.Unmarshal(data, &overrides)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}

	return overrides, nil
}

// ValidateOverrides checks overrides that did not arrive as JSON, such as a
// decoded snapshot, against the same schema as ValidateOverridesJSON.
func ValidateOverrides(overrides Overrides) error {
	data, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}

	_, err = ValidateOverridesJSON(data)

	return err
}
