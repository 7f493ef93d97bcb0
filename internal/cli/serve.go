package cli

import (
	"github.com/spf13/cobra"

	studio "github.com/mn2tech/studiocmd"
	"github.com/mn2tech/studiocmd/config"
)

type serveOptions struct {
	ConfigPath string
}

//nolint:gochecknoglobals // swapped in tests so serve does not block.
var runApp = (*studio.App).Run

func newServeCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the command API over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()

			if opts.ConfigPath != "" {
				loaded, err := config.Load(opts.ConfigPath)
				if err != nil {
					return err
				}

				cfg = *loaded
			}

			app := studio.NewApp(studio.WithStudio(cfg), studio.WithLogOutput(cmd.ErrOrStderr()))

			err := app.Err()
			if err != nil {
				return err
			}

			return runApp(app, cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to the studio YAML configuration")

	return cmd
}
