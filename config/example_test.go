package config_test

import (
	"fmt"

	"github.com/mn2tech/studiocmd/config"
	yamlparser "github.com/mn2tech/studiocmd/config/parser/yaml"
	"github.com/mn2tech/studiocmd/session"
)

// staticFetcher serves configuration bytes from memory.
type staticFetcher []byte

func (f staticFetcher) Fetch() ([]byte, error) {
	return f, nil
}

func ExampleProvider() {
	data := staticFetcher(`
session:
  snapshotPath: sessions.zst
`)

	provider := config.Provider(&session.Config{}, "session")

	cfg, err := provider(yamlparser.NewParser(), data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("capacity=%d snapshot=%s\n", cfg.Capacity, cfg.SnapshotPath)
	// Output: capacity=1024 snapshot=sessions.zst
}

func ExampleProvider_validation() {
	data := staticFetcher("session:\n  capacity: -5\n")

	_, err := config.Provider(&session.Config{}, "session")(yamlparser.NewParser(), data)
	fmt.Println(err)
	// Output: validating error: session capacity must not be negative
}
