package cmd

import (
	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// logoutCmd clears the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session.",
	Long: `Remove the stored session token and login identity.

Subsequent commands run unauthenticated until the next login.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLogout(rootCtx, app); err != nil {
			contract.LogFatal("Cannot log out", err)
		}
	},
}
