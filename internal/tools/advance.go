package tools

import (
	"context"
	"fmt"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// AdvanceTool handles the case_advance MCP tool.
type AdvanceTool struct {
	store config.Store
}

// NewAdvanceTool creates an AdvanceTool with its dependencies.
func NewAdvanceTool(store config.Store) *AdvanceTool {
	return &AdvanceTool{store: store}
}

// phaseGuidance maps each phase to the instruction shown on arrival.
var phaseGuidance = map[config.Phase]string{
	config.PhaseIntake: "Call `case_prompt` for the intake guide and collect the raw facts.",
	config.PhaseDraft:  "Call `case_prompt` to get the drafting prompt for your external LLM.",
	config.PhaseReview: "Call `case_score` to validate the draft against the rubric.",
	config.PhaseFinal:  "Call `case_export` to assemble and write the final document.",
}

// Definition returns the MCP tool definition for registration.
func (t *AdvanceTool) Definition() mcp.Tool {
	return mcp.NewTool("case_advance",
		mcp.WithDescription(
			"Complete the current phase and move to the next one. "+
				"Leaving the review phase requires the last recorded score to clear "+
				"the mode's gate (60 for standard, 75 for executive); run case_score first.",
		),
	)
}

// Handle processes the case_advance tool call.
func (t *AdvanceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	from := cfg.CurrentPhase
	if err := pipeline.Advance(cfg); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := t.store.Save(root, cfg); err != nil {
		return nil, fmt.Errorf("saving case: %w", err)
	}

	response := fmt.Sprintf(
		"# Phase Complete\n\n"+
			"**%s** -> **%s** for case **%s**.\n\n"+
			"## Next Step\n\n%s",
		from, cfg.CurrentPhase, cfg.Name, phaseGuidance[cfg.CurrentPhase],
	)
	return mcp.NewToolResultText(response), nil
}
