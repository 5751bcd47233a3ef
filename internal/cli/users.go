package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rentaride/rentaride/internal/domain/model"
	"github.com/rentaride/rentaride/internal/query"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts (admin)",
	}
	cmd.AddCommand(
		newUsersListCmd(),
		newUsersShowCmd(),
		newUsersUpdateCmd(),
		newUsersRemoveCmd(),
	)
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the user directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.Validate(queryExpr); err != nil {
				return err
			}
			users, err := app.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), queryExpr, users, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE")
				for _, u := range users {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role)
				}
			})
		},
	}

	cmd.Flags().StringVar(&queryExpr, "query", "", "JMESPath expression applied to the result")
	return cmd
}

func newUsersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := app.Users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

func newUsersUpdateCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace an account's email and password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = promptSecret("New password: "); err != nil {
					return err
				}
			}
			update := model.ProfileUpdate{Email: email, Password: password}
			if err := app.Users.Update(cmd.Context(), id, update); err != nil {
				return err
			}
			cmd.Println("User updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New email address")
	cmd.Flags().StringVar(&password, "password", "", "New password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newUsersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Println("User deleted.")
			return nil
		},
	}
}
