package cli

import (
	"encoding/json"
	"strings"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"

	"github.com/mn2tech/studiocmd/command"
)

type parseOptions struct {
	Dump bool
}

func newParseCommand() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Print the command a line of text parses to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := command.Parse(strings.Join(args, " "))

			if opts.Dump {
				godump.Fdump(cmd.OutOrStdout(), parsed)

				return nil
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)

			return encoder.Encode(command.Describe(parsed)) //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "Dump the Go value instead of its JSON form")

	return cmd
}
