package cmd

import (
	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// registerCmd creates a new account.
var registerCmd = &cobra.Command{
	Use:   "register <login>",
	Short: "Register a new account.",
	Long: `Create a new account on the contacts service.

The password is prompted twice and must match. A successful registration
stores a session token straight away, so there is no separate login step.

Examples:
  # Register a new account
  contactbook register ann@example.com`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ValidateLogin(args[0]); err != nil {
			contract.LogFatal("Invalid login", err)
		}
		if err := core.ExecuteRegister(rootCtx, app, args[0]); err != nil {
			contract.LogFatal("Cannot register", err)
		}
	},
}
