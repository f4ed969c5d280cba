package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brightlane-studio/portfolio-backend/internal/bootstrap"
	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/repository"
)

var migratePrint bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the portfolio_projects schema",
	Long: `Apply the embedded schema to the configured Postgres database.
The schema is idempotent and safe to run on every deploy.

Examples:
  # Apply to DATABASE_URL
  portfolio migrate

  # Print the schema instead of applying it
  portfolio migrate --print`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migratePrint {
			fmt.Fprint(cmd.OutOrStdout(), repository.Schema())
			return nil
		}
		if cfg.Database.Driver != "postgres" {
			return fmt.Errorf("migrate requires STORE_DRIVER=postgres, got %q", cfg.Database.Driver)
		}

		db, err := bootstrap.OpenSQL(cmd.Context(), bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		log.Info().Msg("schema applied")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migratePrint, "print", false, "print the schema and exit")
	rootCmd.AddCommand(migrateCmd)
}
