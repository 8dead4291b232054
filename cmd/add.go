package cmd

import (
	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// addCmd creates a new contact.
var addCmd = &cobra.Command{
	Use:   "add <name> <phone-number>",
	Short: "Add a contact.",
	Long: `Create a contact with a name and phone number.

The server assigns the contact ID; the confirmed entry is printed back.
If the stored session has expired, you are prompted for your password and
the add resumes once the session is refreshed.

Examples:
  # Add a contact
  contactbook add "Ann Smith" "+1 555 0100"`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteAdd(rootCtx, app, args[0], args[1]); err != nil {
			contract.LogFatal("Cannot add contact", err)
		}
	},
}
