package main

import (
	"fmt"
	"os"

	"github.com/mn2tech/studiocmd/internal/cli"
)

//nolint:gochecknoglobals // swapped in tests.
var (
	rootCommand = cli.NewRootCommand
	osExit      = os.Exit
)

func main() {
	cmd := rootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
