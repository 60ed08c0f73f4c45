package cli

import (
	"nestdnd/internal/model"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the starting hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := model.NewDefault(app.cfg.Items, app.cfg.SubItems)
			return writeOut(cmd, app, envelope{
				Data: hierarchyDoc{Items: h.Items()},
				Meta: map[string]any{
					"items":    h.Len(),
					"subItems": h.SubItemCount(),
				},
			})
		},
	}
}
