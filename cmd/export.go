package cmd

import (
	"errors"

	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
	"github.com/spf13/cobra"
)

// exportCmd writes the contact list to a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the contact list to a file.",
	Long: `Fetch the contact list and write it to a file in the configured format.

Unlike 'list', export requires --output-file and defaults to CSV. Parquet
output is only available here since it is not streamable to a terminal.

Examples:
  # Export as CSV
  contactbook export --output-file contacts.csv

  # Export as Parquet for analytics tooling
  contactbook export --output parquet --output-file contacts.parquet

  # Export as JSON
  contactbook export --output json --output-file contacts.json`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		if cfg.OutputFile == "" {
			return errors.New("export requires --output-file")
		}
		// A bare 'export' means CSV, not a text table in a file.
		if cfg.Output == schema.TextOut {
			cfg.Output = schema.CSVOut
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(rootCtx, app); err != nil {
			contract.LogFatal("Cannot export contacts", err)
		}
	},
}
