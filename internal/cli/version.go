package cli

import "github.com/spf13/cobra"

// Version is overridden at build time with -ldflags "-X nestdnd/internal/cli.Version=...".
var Version = "dev"

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, envelope{Data: map[string]any{"version": Version}})
		},
	}
}
