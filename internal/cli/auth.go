package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
)

func newRegisterCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long:  "Create an account; registration issues no token, log in afterwards.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if password == "" {
				if password, err = promptSecret("Password: "); err != nil {
					return err
				}
			}
			if err := app.Session.Register(cmd.Context(), username, email, password); err != nil {
				return err
			}
			cmd.Println("Account created. Log in with: rentaride login --email", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if password == "" {
				if password, err = promptSecret("Password: "); err != nil {
					return err
				}
			}
			if err := app.Session.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			snap := app.Session.Snapshot()
			if snap.User != nil {
				cmd.Printf("Logged in as %s (%s)\n", snap.User.Username, domainauth.RoleFor(snap))
			} else {
				cmd.Println("Logged in.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and erase the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			loggedIn := app.Session.Snapshot().LoggedIn()
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			if loggedIn {
				cmd.Println("Logged out.")
			} else {
				cmd.Println("Not logged in.")
			}
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Session.Snapshot()
			state := domainauth.StateFor(snap)
			cmd.Printf("state: %s\n", state)
			if snap.User != nil {
				cmd.Printf("user:  %s <%s> (id %d)\n", snap.User.Username, snap.User.Email, snap.User.ID)
				cmd.Printf("role:  %s\n", domainauth.RoleFor(snap))
			}
			return nil
		},
	}
}

// promptSecret reads a line from stdin. Plain read; terminals that need
// no-echo should pipe the value or use the flag.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
