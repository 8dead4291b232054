package cmd

import (
	"fmt"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/internal/session"
	"github.com/hellperdev/contactbook/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sessionSetup loads minimal configuration needed for session store
// operations. This is used by commands that need store access without the
// full shared setup (no base URL or gateway required).
func sessionSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get session-related config values
	backend := schema.DatabaseBackend(viper.GetString("session-backend"))
	connStr := viper.GetString("session-db-connect")
	if backend == "" {
		backend = schema.SQLiteBackend
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.SessionBackend = backend
	cfg.SessionDBConnect = connStr

	return nil
}

// sessionSetupWrapper wraps sessionSetup to provide PreRunE for session commands.
func sessionSetupWrapper(_ *cobra.Command, _ []string) error {
	return sessionSetup()
}

// openSessionStore opens the store with the minimally loaded config.
func openSessionStore() (contract.CredentialStore, error) {
	return session.NewStore(cfg.SessionBackend, cfg.SessionDBConnect)
}

// sessionCmd focused on session store management.
//
// Note: Session subcommands use minimal initialization (sessionSetup)
// instead of the full sharedSetup used by contact commands. This avoids
// touching the network for local store operations.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the stored session",
	Long: `Manage the durable session store that keeps you logged in between runs.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show session store connection and login state
  clear   - Remove the stored token and login identity
  migrate - Apply or roll back the session store schema

Examples:
  # Check whether a session is stored
  contactbook session status

  # Drop the stored session without a logout round trip
  contactbook session clear`,
}

// sessionStatusCmd shows session store status.
var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session store connection and login state",
	Long: `Show detailed information about the session store.

Displays:
- Backend type and connection status
- Whether a credential is stored and for which login
- When the session was last updated

Examples:
  # Check session status
  contactbook session status`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openSessionStore()
		if err != nil {
			contract.LogFatal("Failed to open session store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Failed to get session status", err)
		}
		session.PrintSessionStatus(status)
	},
}

// sessionClearCmd clears the stored session.
var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored session credential",
	Long: `Delete the stored token and login identity from the configured backend.

Unlike 'logout' this never touches the network, so it also works when the
service is unreachable or the stored state is corrupt.

Examples:
  # Clear the SQLite session (default)
  contactbook session clear

  # Clear a MySQL-backed session
  CONTACTBOOK_SESSION_BACKEND=mysql CONTACTBOOK_SESSION_DB_CONNECT="..." contactbook session clear`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openSessionStore()
		if err != nil {
			contract.LogFatal("Failed to open session store", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear session", err)
		}
		fmt.Println("Session cleared successfully.")
	},
}

// sessionMigrateCmd applies schema migrations to the session store.
var sessionMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back session store schema migrations",
	Long: `Run the embedded schema migrations against the session store backend.

Use --target-version to pin a specific schema version, 0 to roll back to
an empty store, or the default -1 for the latest version.

Examples:
  # Migrate to the latest schema
  contactbook session migrate

  # Roll everything back
  contactbook session migrate --target-version 0`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := session.Migrate(cfg.SessionBackend, cfg.SessionDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate session store", err)
		}
	},
}
