package cli

import (
	"github.com/spf13/cobra"

	"github.com/rentaride/rentaride/internal/domain/model"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the signed-in account",
	}
	cmd.AddCommand(newProfileUpdateCmd(), newProfileDeleteCmd())
	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the account's email and password",
		Long:  "The backend replaces both fields on every update, so both are required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if password == "" {
				if password, err = promptSecret("New password: "); err != nil {
					return err
				}
			}
			update := model.ProfileUpdate{Email: email, Password: password}
			if err := app.Session.UpdateProfile(cmd.Context(), update); err != nil {
				return err
			}
			cmd.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New email address")
	cmd.Flags().StringVar(&password, "password", "", "New password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newProfileDeleteCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the signed-in account permanently",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				answer, err := promptSecret("This permanently deletes your account. Type the word delete to confirm: ")
				if err != nil {
					return err
				}
				if answer != "delete" {
					cmd.Println("Aborted.")
					return nil
				}
			}
			if err := app.Session.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Account deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Skip the confirmation prompt")
	return cmd
}
