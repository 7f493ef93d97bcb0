package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	studio "github.com/mn2tech/studiocmd"
	"github.com/mn2tech/studiocmd/command"
)

func newHelpCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "help-commands",
		Short: "List the dashboard commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), command.HelpText())

			return err //nolint:wrapcheck
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "studioctl %s (commit %s, built %s)\n",
				studio.Version, studio.Commit, studio.CompiledAt)

			return err //nolint:wrapcheck
		},
	}
}
