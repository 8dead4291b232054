package cmd

import (
	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// loginCmd exchanges credentials for a session token.
var loginCmd = &cobra.Command{
	Use:   "login <login>",
	Short: "Log in and store a session token.",
	Long: `Exchange your login and password for a session token.

The password is read from the terminal without echo. The token and login
identity are stored in the session backend and attached to every
subsequent request until they expire or you log out.

Examples:
  # Log in
  contactbook login ann@example.com`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ValidateLogin(args[0]); err != nil {
			contract.LogFatal("Invalid login", err)
		}
		if err := core.ExecuteLogin(rootCtx, app, args[0]); err != nil {
			contract.LogFatal("Cannot log in", err)
		}
	},
}
