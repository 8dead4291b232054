package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/spf13/cobra"
)

// deleteCmd removes a contact by ID.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact by ID.",
	Long: `Delete the contact with the given server-assigned ID.

The ID is the opaque identifier shown by 'contactbook list'. A confirmation
prompt guards against accidental deletes; pass --yes to skip it in scripts.
Deleting an ID that no longer exists reports the server's response rather
than failing locally.

Examples:
  # Delete with confirmation
  contactbook delete 42

  # Delete without confirmation
  contactbook delete 42 --yes`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id := strings.TrimSpace(args[0])
		if id == "" {
			contract.LogFatal("Invalid contact ID", errors.New("id must not be empty"))
		}

		if !cfg.AssumeYes {
			confirmed, err := contract.Confirm(fmt.Sprintf("Delete contact %s?", id))
			if err != nil {
				contract.LogFatal("Cannot read confirmation", err)
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return
			}
		}

		if err := core.ExecuteDelete(rootCtx, app, id); err != nil {
			contract.LogFatal("Cannot delete contact", err)
		}
	},
}
