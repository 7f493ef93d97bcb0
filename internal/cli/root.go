// Package cli implements the studioctl command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand constructs the root studioctl command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "studioctl",
		Short:         "studioctl parses and applies dashboard commands and serves the command API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newReplCommand())
	cmd.AddCommand(newParseCommand())
	cmd.AddCommand(newApplyCommand())
	cmd.AddCommand(newHelpCommandsCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
