// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/hellperdev/contactbook/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the contactbook MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(app *core.App) *server.MCPServer {
	s := server.NewMCPServer(
		"Contactbook Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{app: app}

	// --- 1. Tool: list_contacts ---
	s.AddTool(mcp.NewTool("list_contacts",
		mcp.WithDescription("List the contacts in the signed-in account's contact book."),
		mcp.WithString("filter", mcp.Description("Only return contacts whose name contains this text (case-insensitive).")),
	), h.handleListContacts)

	// --- 2. Tool: add_contact ---
	s.AddTool(mcp.NewTool("add_contact",
		mcp.WithDescription("Add a contact with a name and phone number."),
		mcp.WithString("name", mcp.Description("The contact's name."), mcp.Required()),
		mcp.WithString("phone_number", mcp.Description("The contact's phone number."), mcp.Required()),
	), h.handleAddContact)

	// --- 3. Tool: delete_contact ---
	s.AddTool(mcp.NewTool("delete_contact",
		mcp.WithDescription("Delete a contact by its ID."),
		mcp.WithString("id", mcp.Description("The ID of the contact to delete."), mcp.Required()),
	), h.handleDeleteContact)

	return s
}

// StartMCPServer starts the contactbook MCP server on stdio.
func StartMCPServer(_ context.Context, app *core.App) error {
	s := NewMCPServer(app)
	return server.ServeStdio(s)
}
