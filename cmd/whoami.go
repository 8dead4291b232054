package cmd

import (
	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// whoamiCmd prints the stored login identity.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Print the login of the stored session.",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWhoami(rootCtx, app); err != nil {
			contract.LogFatal("Cannot determine identity", err)
		}
	},
}
