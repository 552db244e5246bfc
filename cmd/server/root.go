package main

import (
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/config"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/logging"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "GraphQL API for users and their contracts",
	Long: `server exposes users and the contracts they own over a single GraphQL
endpoint backed by PostgreSQL or SQLite. Running it without a subcommand
starts the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup()
		cfg = config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}
