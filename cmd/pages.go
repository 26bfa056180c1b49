package cmd

import (
	"github.com/lehigh-university-libraries/libadmin/internal/render"
	"github.com/spf13/cobra"
)

func newPagesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the navigation pages offered by the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			pages, err := a.client.Pages(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]render.Row, 0, len(pages))
			for _, p := range pages {
				rows = append(rows, render.Row{ID: p.Path, Cells: []string{p.Name, p.Path, p.Icon}})
			}
			return a.write([]string{"name", "path", "icon"}, rows)
		},
	}
}
