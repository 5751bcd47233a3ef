package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rentaride/rentaride/internal/query"
)

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and leave vehicle reviews",
	}
	cmd.AddCommand(
		newReviewsListCmd(),
		newReviewsForCarCmd(),
		newReviewsAddCmd(),
		newReviewsRemoveCmd(),
	)
	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every review",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.Validate(queryExpr); err != nil {
				return err
			}
			reviews, err := app.Reviews.All(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), queryExpr, reviews, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tUSER\tCAR\tRATING\tCOMMENT")
				for _, r := range reviews {
					fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", r.ID, r.UserID, r.CarID, r.Rating, r.Comment)
				}
			})
		},
	}

	cmd.Flags().StringVar(&queryExpr, "query", "", "JMESPath expression applied to the result")
	return cmd
}

func newReviewsForCarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "for-car ID",
		Short: "List one car's reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			reviews, err := app.Reviews.ForCar(cmd.Context(), id)
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), "", reviews, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tUSER\tRATING\tCOMMENT")
				for _, r := range reviews {
					fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", r.ID, r.Username, r.Rating, r.Comment)
				}
			})
		},
	}
}

func newReviewsAddCmd() *cobra.Command {
	var carID int64
	var rating int
	var comment string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Leave a review for a car",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Reviews.Add(cmd.Context(), carID, rating, comment)
			if err != nil {
				return err
			}
			cmd.Printf("Review created with id %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&carID, "car", 0, "Car id")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating (1-5)")
	cmd.Flags().StringVar(&comment, "comment", "", "Comment")
	_ = cmd.MarkFlagRequired("car")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newReviewsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a review (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Reviews.Delete(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Println("Review deleted.")
			return nil
		},
	}
}
