package cmd

import (
	"github.com/hellperdev/contactbook/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the contactbook MCP server",
	Long: `Launch an MCP server that lets AI agents manage the contact book via standard tools.

The server speaks the protocol over stdio, so the session must already be
established with 'contactbook login'; there is no interactive password
prompt in this mode.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdio clean for the protocol; setup errors go to stderr.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, app)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
