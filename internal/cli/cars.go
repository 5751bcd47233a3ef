package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rentaride/rentaride/internal/domain/model"
	"github.com/rentaride/rentaride/internal/query"
)

func newCarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cars",
		Short: "Browse and manage the fleet",
	}
	cmd.AddCommand(
		newCarsListCmd(),
		newCarsShowCmd(),
		newCarsAddCmd(),
		newCarsUpdateCmd(),
		newCarsRemoveCmd(),
	)
	return cmd
}

func newCarsListCmd() *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.Validate(queryExpr); err != nil {
				return err
			}
			cars, err := app.Cars.List(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), queryExpr, cars, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tBRAND\tMODEL\tPRICE/DAY\tSTATUS")
				for _, c := range cars {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", c.ID, c.Brand, c.Model, c.PricePerDay, c.Status)
				}
			})
		},
	}

	cmd.Flags().StringVar(&queryExpr, "query", "", "JMESPath expression applied to the result")
	return cmd
}

func newCarsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			car, err := app.Cars.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), car)
		},
	}
}

func carInputFlags(cmd *cobra.Command, in *model.CarInput, status *string) {
	cmd.Flags().StringVar(&in.Brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&in.Model, "model", "", "Model")
	cmd.Flags().StringVar(&in.Image1, "image1", "", "First image URL")
	cmd.Flags().StringVar(&in.Image2, "image2", "", "Second image URL")
	cmd.Flags().Float64Var(&in.PricePerDay, "price", 0, "Price per day")
	cmd.Flags().StringVar(status, "status", string(model.CarAvailable), "Fleet status")
}

func newCarsAddCmd() *cobra.Command {
	var in model.CarInput
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vehicle to the fleet (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = model.CarStatus(status)
			id, err := app.Cars.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			cmd.Printf("Car created with id %d\n", id)
			return nil
		},
	}

	carInputFlags(cmd, &in, &status)
	return cmd
}

func newCarsUpdateCmd() *cobra.Command {
	var in model.CarInput
	var status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a vehicle (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in.Status = model.CarStatus(status)
			if err := app.Cars.Update(cmd.Context(), id, in); err != nil {
				return err
			}
			cmd.Println("Car updated.")
			return nil
		},
	}

	carInputFlags(cmd, &in, &status)
	return cmd
}

func newCarsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a vehicle from the fleet (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Cars.Delete(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Println("Car removed.")
			return nil
		},
	}
}

// parseID parses a positional numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
