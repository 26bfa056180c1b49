package cmd

import (
	"github.com/lehigh-university-libraries/libadmin/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export users or books to a file",
		Long: `Fetches the full list from the backend and writes it to a file.

The format follows the file extension: .csv, .json, .yaml/.yml or .parquet.`,
		Example: `  libadmin export users users.csv
  libadmin export books books.parquet`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "users <file>",
		Short: "Export all users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			users, err := a.client.Users().List(cmd.Context())
			if err != nil {
				return err
			}
			return export.WriteFile(args[0], users, export.Users)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "books <file>",
		Short: "Export all books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			books, err := a.client.Books().List(cmd.Context())
			if err != nil {
				return err
			}
			return export.WriteFile(args[0], books, export.Books)
		},
	})

	return cmd
}
