package main

import (
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Connect(cfg); err != nil {
			return err
		}
		defer database.Close(database.DB)

		if err := database.Migrate(database.DB); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		slog.Info("migration completed", "driver", cfg.DBDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
