package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/pipeline"
	"github.com/bordenet/business-justification-assistant/internal/scoring"
	"github.com/bordenet/business-justification-assistant/internal/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// ExportTool handles the case_export MCP tool.
// It assembles the final document from the best available draft.
type ExportTool struct {
	store     config.Store
	renderer  templates.Renderer
	validator *scoring.Validator
}

// NewExportTool creates an ExportTool with its dependencies.
func NewExportTool(store config.Store, renderer templates.Renderer, validator *scoring.Validator) *ExportTool {
	return &ExportTool{store: store, renderer: renderer, validator: validator}
}

// Definition returns the MCP tool definition for registration.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("case_export",
		mcp.WithDescription(
			"Assemble and write the final business case to bja/final.md. "+
				"Requires the case to have reached the final phase via case_advance. "+
				"The document is scored one last time and the score is stamped into "+
				"the file header.",
		),
	)
}

// Handle processes the case_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := pipeline.RequirePhase(cfg, config.PhaseFinal); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := currentDocument(root, cfg)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc) == "" {
		return mcp.NewToolResultError(
			"no document content found to export; this case has no saved draft"), nil
	}

	rep := t.validator.Validate(doc)

	out, err := t.renderer.Render(templates.FinalDocument, templates.FinalDocumentData{
		Name:        cfg.Name,
		Audience:    cfg.Audience,
		Content:     doc,
		Score:       rep.TotalScore,
		GeneratedAt: cfg.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering final document: %w", err)
	}

	path := config.PhasePath(root, config.PhaseFinal)
	if err := writePhaseFile(path, out); err != nil {
		return nil, err
	}

	cfg.LastScore = rep.TotalScore
	if err := pipeline.Complete(cfg); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := t.store.Save(root, cfg); err != nil {
		return nil, fmt.Errorf("saving case: %w", err)
	}

	response := fmt.Sprintf(
		"# Case Exported\n\n"+
			"**%s** written to `bja/final.md` with a final score of **%d/100**.\n\n"+
			"The workflow is complete. Hand the document to %s.",
		cfg.Name, rep.TotalScore, cfg.Audience,
	)
	return mcp.NewToolResultText(response), nil
}
