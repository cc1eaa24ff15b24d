package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/app"
	"github.com/tejaswik02/campusplace/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "campusplace",
	Short: "Campus placement portal CLI",
	Long: `Campusplace is a CLI client for the campus placement portal.
Students build and submit their profiles, browse opportunities and apply;
the TPO reviews and verifies student accounts.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(verbose)

		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		activeApp = application
		return nil
	},
}

// activeApp is closed after Execute; commands reach the container through
// the command context.
var activeApp *app.App

// appFromCmd returns the initialized App for a running command.
func appFromCmd(cmd *cobra.Command) (*app.App, error) {
	a := app.GetAppFromContext(cmd.Context())
	if a == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}

// Execute runs the root command
func Execute() {
	// Create a cancelable context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()

	// Cleanup: close app resources
	if activeApp != nil {
		activeApp.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
