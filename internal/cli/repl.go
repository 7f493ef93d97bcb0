package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mn2tech/studiocmd/logging"
	"github.com/mn2tech/studiocmd/session"
)

const replSession = "repl"

type replOptions struct {
	StatePath string
	Format    string
}

func newReplCommand() *cobra.Command {
	var opts replOptions

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read dashboard commands from stdin and print the resulting overrides",
		Long: "Each line is parsed and applied to the overrides of the previous lines. " +
			`"exit" or "quit" leave. With --state the overrides survive between runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := checkFormat(opts.Format)
			if err != nil {
				return err
			}

			return runRepl(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.StatePath, "state", "", "Session snapshot file loaded at start and saved on exit")
	cmd.Flags().StringVar(&opts.Format, "format", formatJSON, "Output format: json or yaml")

	return cmd
}

func runRepl(cmd *cobra.Command, opts replOptions) error {
	logger := logging.NewLogger(logging.LoggerConfig{Level: "error"}, cmd.ErrOrStderr())

	// The state file may be a server snapshot; every session in it is kept
	// and written back on exit.
	store, err := session.NewStore(session.Config{Capacity: 1, GrowOnLoad: true}, logger)
	if err != nil {
		return err
	}

	if opts.StatePath != "" {
		err = store.LoadFile(opts.StatePath)
		if err != nil {
			return err
		}

		store.Reserve(1)
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))

		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			break
		}

		err = replLine(cmd, store, out, line, opts.Format)
		if err != nil {
			return err
		}
	}

	err = scanner.Err()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if opts.StatePath != "" {
		return store.SaveFile(opts.StatePath)
	}

	return nil
}

func replLine(cmd *cobra.Command, store *session.Store, out io.Writer, line, format string) error {
	outcome, err := store.Execute(cmd.Context(), replSession, line)
	if err != nil {
		return err
	}

	switch {
	case outcome.Result.Failed():
		_, err = fmt.Fprintf(out, "error: %s\n", outcome.Result.Err)
	case outcome.Result.IsHelp():
		_, err = fmt.Fprintln(out, outcome.Result.HelpText)
	default:
		err = renderOverrides(out, *outcome.Result.Overrides, format)
	}

	return err //nolint:wrapcheck
}
