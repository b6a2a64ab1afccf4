// Package resources implements MCP resource handlers for the business
// case workflow.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (bja://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages the case resource endpoints.
type Handler struct {
	store config.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store config.Store) *Handler {
	return &Handler{store: store}
}

// StatusResource returns the MCP resource definition for case status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"bja://case/status",
		"Business Case Status",
		mcp.WithResourceDescription("Current workflow phase, per-phase progress, and last validation score"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current case state as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	root, err := findRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}

	cfg, err := h.store.Load(root)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
