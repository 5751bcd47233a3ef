package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rentaride/rentaride/internal/domain/model"
	"github.com/rentaride/rentaride/internal/query"
)

func newBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Book vehicles and manage reservations",
	}
	cmd.AddCommand(
		newBookingsMineCmd(),
		newBookingsListCmd(),
		newBookingsForCarCmd(),
		newBookingsBookCmd(),
		newBookingsSetStatusCmd(),
		newBookingsCancelCmd(),
		newBookingsRemoveCmd(),
	)
	return cmd
}

func bookingTable(bookings []model.Booking) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tUSER\tCAR\tFROM\tTO\tSTATUS")
		for _, b := range bookings {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\n", b.ID, b.UserID, b.CarID, b.StartDate, b.EndDate, b.Status)
		}
	}
}

func newBookingsMineCmd() *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.Validate(queryExpr); err != nil {
				return err
			}
			bookings, err := app.Bookings.Mine(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), queryExpr, bookings, bookingTable(bookings))
		},
	}

	cmd.Flags().StringVar(&queryExpr, "query", "", "JMESPath expression applied to the result")
	return cmd
}

func newBookingsListCmd() *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every reservation (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.Validate(queryExpr); err != nil {
				return err
			}
			bookings, err := app.Bookings.All(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), queryExpr, bookings, bookingTable(bookings))
		},
	}

	cmd.Flags().StringVar(&queryExpr, "query", "", "JMESPath expression applied to the result")
	return cmd
}

func newBookingsForCarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "for-car ID",
		Short: "List one car's reservations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			bookings, err := app.Bookings.ForCar(cmd.Context(), id)
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), "", bookings, bookingTable(bookings))
		},
	}
}

func newBookingsBookCmd() *cobra.Command {
	var carID int64
	var from, to string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Reserve a car for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Bookings.Book(cmd.Context(), carID, from, to)
			if err != nil {
				return err
			}
			cmd.Printf("Booking created with id %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&carID, "car", 0, "Car id")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("car")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newBookingsSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status ID STATUS",
		Short: "Transition a reservation (pending, confirmed, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Bookings.SetStatus(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			cmd.Println("Booking updated.")
			return nil
		},
	}
}

func newBookingsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Bookings.Cancel(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Println("Booking cancelled.")
			return nil
		},
	}
}

func newBookingsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a reservation; the car becomes available again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Bookings.Delete(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Println("Booking deleted.")
			return nil
		},
	}
}
