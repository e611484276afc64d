package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stocks-ledger/database"
)

var downSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Applies or rolls back the embedded SQL migrations.

Examples:
  stocks-ledger migrate up
  stocks-ledger migrate down --steps 1`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Postgres, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Postgres, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.MigrateDown(db, downSteps); err != nil {
			return err
		}
		log.Info("migrations rolled back", zap.Int("steps", downSteps))
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
