package cmd

import (
	"strconv"

	"github.com/lehigh-university-libraries/libadmin/internal/render"
	"github.com/spf13/cobra"
)

var dashboardHeaders = []string{"total_users", "total_books", "available_books"}

func newDashboardCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show user and book counts",
		Long: `Fetches the user and book lists in parallel and shows the totals,
including how many books are currently available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			stats, err := a.dashboard.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			return a.write(dashboardHeaders, []render.Row{{
				Cells: []string{
					strconv.Itoa(stats.TotalUsers),
					strconv.Itoa(stats.TotalBooks),
					strconv.Itoa(stats.AvailableBooks),
				},
			}})
		},
	}
}
