// Package cmd defines the command-line interface for contactbook.
package cmd

import (
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the session subcommands to the parent session command
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	sessionCmd.AddCommand(sessionMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "Base URL of the contacts service")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Request timeout (e.g. 10s, 1m)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("session-backend", string(schema.SQLiteBackend), "Session backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("session-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of listCmd to Viper
	listCmd.Flags().StringP("filter", "f", "", "Only show contacts whose name contains this text")
	if err := viper.BindPFlags(listCmd.Flags()); err != nil {
		contract.LogFatal("Error binding list flags", err)
	}

	// Bind all flags of deleteCmd to Viper
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the delete confirmation prompt")
	if err := viper.BindPFlags(deleteCmd.Flags()); err != nil {
		contract.LogFatal("Error binding delete flags", err)
	}

	// Bind all flags of sessionMigrateCmd to Viper
	sessionMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(sessionMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding session migrate flags", err)
	}
}
