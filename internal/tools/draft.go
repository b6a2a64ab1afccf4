package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/history"
	"github.com/bordenet/business-justification-assistant/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// DraftTool handles the case_draft MCP tool.
// It saves phase content: intake notes, the LLM's draft, or a revision.
type DraftTool struct {
	store config.Store
	hist  *history.Store
}

// NewDraftTool creates a DraftTool with its dependencies. hist may be nil.
func NewDraftTool(store config.Store, hist *history.Store) *DraftTool {
	return &DraftTool{store: store, hist: hist}
}

// Definition returns the MCP tool definition for registration.
func (t *DraftTool) Definition() mcp.Tool {
	return mcp.NewTool("case_draft",
		mcp.WithDescription(
			"Save content for the current phase. At intake this is your raw notes; "+
				"at draft it is the document the external LLM produced; at review it is "+
				"a revised document. The content is written to bja/<phase>.md and a "+
				"revision is recorded in the drafts history.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The full markdown content to save for the current phase."),
		),
	)
}

// Handle processes the case_draft tool call.
func (t *DraftTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := req.GetString("content", "")
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("'content' is required; pass the full markdown to save"), nil
	}

	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if cfg.CurrentPhase == config.PhaseFinal {
		return mcp.NewToolResultError(
			"the case is at the final phase; call case_export instead of saving more drafts"), nil
	}

	path := config.PhasePath(root, cfg.CurrentPhase)
	if err := writePhaseFile(path, content); err != nil {
		return nil, err
	}

	pipeline.MarkInProgress(cfg)
	if err := t.store.Save(root, cfg); err != nil {
		return nil, fmt.Errorf("saving case: %w", err)
	}

	revisionNote := ""
	if t.hist != nil {
		draft, histErr := t.hist.SaveDraft(cfg.Name, string(cfg.CurrentPhase), content)
		if histErr != nil {
			revisionNote = "\n\nNote: the draft history could not be updated."
		} else {
			revisionNote = fmt.Sprintf("\n\nRecorded as revision %d in the drafts history.", draft.Revision)
		}
	}

	nextStep := "Call `case_score` to validate it, then `case_advance` when the gate passes."
	switch cfg.CurrentPhase {
	case config.PhaseIntake:
		nextStep = "Call `case_advance` to move to the draft phase, then `case_prompt` for the drafting prompt."
	case config.PhaseDraft:
		nextStep = "Call `case_score` to run the validator, then `case_advance` to enter review."
	}

	response := fmt.Sprintf(
		"# Content Saved\n\n"+
			"Wrote %d bytes to `bja/%s.md` for case **%s**.%s\n\n"+
			"## Next Step\n\n%s",
		len(content), cfg.CurrentPhase, cfg.Name, revisionNote, nextStep,
	)
	return mcp.NewToolResultText(response), nil
}
