package cmd

import (
	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// listCmd fetches and renders the contact list.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the contacts in your contact book.",
	Long: `Fetch the contact list from the service and render it.

If the stored session has expired, you are prompted for your password and
the listing resumes once the session is refreshed.

Examples:
  # Show all contacts as a table
  contactbook list

  # Only contacts whose name contains "ann"
  contactbook list --filter ann

  # Machine-readable output
  contactbook list --output json
  contactbook list --output csv --output-file contacts.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(rootCtx, app); err != nil {
			contract.LogFatal("Cannot list contacts", err)
		}
	},
}
