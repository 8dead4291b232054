package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hellperdev/contactbook/core"
	"github.com/hellperdev/contactbook/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// expiredSessionAdvice is returned when the stored credential has expired.
// The MCP transport has no interactive prompt, so recovery happens outside
// the server.
const expiredSessionAdvice = "session expired: run 'contactbook login' in a terminal, then retry"

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	app *core.App
}

func (h *toolHandler) handleListContacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := h.app.Orchestrator().ListAll(ctx)
	if failed := h.settleResult(result); failed != nil {
		return failed, nil
	}

	contacts := h.app.Orchestrator().Cache().Filter(request.GetString("filter", ""))
	jsonData, _ := json.MarshalIndent(contacts, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAddContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	phoneNumber := request.GetString("phone_number", "")

	result := h.app.Orchestrator().Add(ctx, name, phoneNumber)
	if failed := h.settleResult(result); failed != nil {
		return failed, nil
	}

	jsonData, _ := json.MarshalIndent(result.Contact, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDeleteContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id must not be empty"), nil
	}

	result := h.app.Orchestrator().Delete(ctx, id)
	if failed := h.settleResult(result); failed != nil {
		return failed, nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("deleted contact %s", id)), nil
}

// settleResult converts a non-OK result into a tool error, or nil when the
// operation confirmed. A pending re-auth challenge is dismissed here, since
// the server will never submit a password for it; the stored credential is
// left in place for a later interactive login.
func (h *toolHandler) settleResult(result core.Result) *mcp.CallToolResult {
	switch result.Status {
	case schema.StatusPendingReauth:
		h.app.Reauth().Reset()
		return mcp.NewToolResultError(expiredSessionAdvice)
	case schema.StatusFailed:
		return mcp.NewToolResultError(result.Message)
	default:
		return nil
	}
}
