package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mn2tech/studiocmd/command"
)

// ErrCommandRejected is returned when one of the applied commands fails.
var ErrCommandRejected = errors.New("command rejected")

type applyOptions struct {
	FromPath string
	Format   string
}

func newApplyCommand() *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply <command>...",
		Short: "Apply commands in order and print the resulting overrides",
		Example: `  studioctl apply "template govcon" "add map" "topn 20"
  studioctl apply --from overrides.json --format yaml "grain week"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := checkFormat(opts.Format)
			if err != nil {
				return err
			}

			overrides, err := loadOverrides(opts.FromPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, line := range args {
				result := command.Apply(overrides, command.Parse(line))

				if result.Failed() {
					return fmt.Errorf("%w: %q: %s", ErrCommandRejected, line, result.Err)
				}

				if result.IsHelp() {
					fmt.Fprintln(out, result.HelpText)
				}

				overrides = *result.Overrides
			}

			return renderOverrides(out, overrides, opts.Format)
		},
	}

	cmd.Flags().StringVar(&opts.FromPath, "from", "", "JSON overrides document to start from")
	cmd.Flags().StringVar(&opts.Format, "format", formatJSON, "Output format: json or yaml")

	return cmd
}

func loadOverrides(path string) (command.Overrides, error) {
	if path == "" {
		return command.Overrides{}, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return command.Overrides{}, fmt.Errorf("reading overrides: %w", err)
	}

	overrides, err := command.ValidateOverridesJSON(data)
	if err != nil {
		return command.Overrides{}, fmt.Errorf("%s: %w", path, err)
	}

	return overrides, nil
}
