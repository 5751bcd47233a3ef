package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin overview (bookings, cars, reviews, users)",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), overview)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COLLECTION\tCOUNT")
			fmt.Fprintf(tw, "bookings\t%d\n", len(overview.Bookings))
			fmt.Fprintf(tw, "cars\t%d\n", len(overview.Cars))
			fmt.Fprintf(tw, "reviews\t%d\n", len(overview.Reviews))
			fmt.Fprintf(tw, "users\t%d\n", len(overview.Users))
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full overview as JSON")
	return cmd
}
