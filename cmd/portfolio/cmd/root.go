// Package cmd contains the CLI commands for the portfolio backend.
package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brightlane-studio/portfolio-backend/config"
	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Studio portfolio backend",
	Long: `Content backend for the studio marketing site.

Serves the portfolio CRUD API, reconciles project images with a Google
Drive folder and relays contact form submissions to the email API.

Examples:
  # Run the HTTP API
  portfolio serve

  # Apply the database schema
  portfolio migrate

  # Run one image reconciliation pass
  portfolio sync --folder 1AbCdEf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger.Setup(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
