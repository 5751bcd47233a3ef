package cli

// Package cli implements the rentaride terminal client. Commands collect
// input and render state; every decision that matters (availability,
// validation, status transitions) belongs to the backend.

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rentaride/rentaride/internal/bootstrap"
	"github.com/rentaride/rentaride/internal/service"
)

var (
	flagAPI   string
	flagDebug bool

	logger *slog.Logger
	app    *bootstrap.App
)

// NewRootCmd creates the root cobra command for the rentaride CLI.
func NewRootCmd() *cobra.Command {
	var cleanup func()

	root := &cobra.Command{
		Use:   "rentaride",
		Short: "Terminal client for the car rental service",
		Long:  "rentaride browses the fleet, books vehicles, and manages accounts against the rental backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			if flagAPI != "" {
				cfg.API.BaseURL = flagAPI
				cfg.Sanitize()
			}
			logger = bootstrap.InitLogger(flagDebug || cfg.IsDev)

			app, cleanup, err = bootstrap.NewApp(cfg, logger)
			if err != nil {
				return err
			}

			// Pick up a persisted token. A rejected token just means we run
			// as guest; connectivity trouble is reported by the command that
			// actually needs the backend.
			if err := app.Session.Resume(cmd.Context()); err != nil {
				if errors.Is(err, service.ErrSessionExpired) {
					cmd.PrintErrln("Session expired; please log in again.")
				} else {
					logger.DebugContext(cmd.Context(), "session resume failed", "error", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", "", "Backend base URL (or API_BASE_URL env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newProfileCmd(),
		newCarsCmd(),
		newBookingsCmd(),
		newReviewsCmd(),
		newUsersCmd(),
		newDashboardCmd(),
	)

	return root
}
