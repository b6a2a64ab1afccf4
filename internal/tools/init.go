package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// InitTool handles the case_init MCP tool.
type InitTool struct {
	store config.Store
}

// NewInitTool creates an InitTool with its dependencies.
func NewInitTool(store config.Store) *InitTool {
	return &InitTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *InitTool) Definition() mcp.Tool {
	return mcp.NewTool("case_init",
		mcp.WithDescription(
			"Start a new business justification case. Creates bja/case.json in the "+
				"current project and positions the workflow at the intake phase. "+
				"The workflow is: intake (you write the raw facts) -> draft (an external "+
				"LLM writes the case) -> review (deterministic scoring and revision) -> final (export). "+
				"Only one case per directory.",
		),
		mcp.WithString("case_name",
			mcp.Required(),
			mcp.Description("Short name for the business case, e.g. 'migrate-crm'"),
		),
		mcp.WithString("audience",
			mcp.Description("Who has to approve this, e.g. 'the CFO' or 'VP Engineering'. Default: 'executive leadership'"),
		),
		mcp.WithString("mode",
			mcp.Description("Review strictness: 'standard' (gate at 60/100) or 'executive' (gate at 75/100). Default: standard"),
		),
	)
}

// Handle processes the case_init tool call.
func (t *InitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caseName := strings.TrimSpace(req.GetString("case_name", ""))
	if caseName == "" {
		return mcp.NewToolResultError("'case_name' is required; give the case a short name"), nil
	}
	audience := req.GetString("audience", "executive leadership")

	mode, err := config.ParseMode(req.GetString("mode", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}

	if t.store.Exists(root) {
		existing, loadErr := t.store.Load(root)
		if loadErr == nil {
			return mcp.NewToolResultError(fmt.Sprintf(
				"a case %q already exists here (phase: %s); finish or remove it first",
				existing.Name, existing.CurrentPhase)), nil
		}
		return mcp.NewToolResultError("a case file already exists here but could not be read"), nil
	}

	cfg := config.NewCaseConfig(caseName, audience, mode)
	if err := t.store.Save(root, cfg); err != nil {
		return nil, fmt.Errorf("saving case: %w", err)
	}

	response := fmt.Sprintf(
		"# Case Initialized\n\n"+
			"**%s** for %s (%s mode, review gate at %d/100)\n\n"+
			"Saved to `bja/case.json`.\n\n"+
			"## Next Step\n\n"+
			"The workflow is at the **intake** phase. Call `case_prompt` for a guide "+
			"to what facts to collect, then save your notes with `case_draft`.",
		cfg.Name, cfg.Audience, cfg.Mode, pipeline.ScoreThreshold(cfg.Mode),
	)
	return mcp.NewToolResultText(response), nil
}
