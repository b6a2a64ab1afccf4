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

// PromptTool handles the case_prompt MCP tool.
// It renders the text the user copies into their external LLM for the
// current phase.
type PromptTool struct {
	store     config.Store
	renderer  templates.Renderer
	validator *scoring.Validator
}

// NewPromptTool creates a PromptTool with its dependencies.
func NewPromptTool(store config.Store, renderer templates.Renderer, validator *scoring.Validator) *PromptTool {
	return &PromptTool{store: store, renderer: renderer, validator: validator}
}

// Definition returns the MCP tool definition for registration.
func (t *PromptTool) Definition() mcp.Tool {
	return mcp.NewTool("case_prompt",
		mcp.WithDescription(
			"Get the working prompt for the current phase. "+
				"At intake: a guide to the facts you need to collect. "+
				"At draft: a prompt to paste into an external LLM, with your intake notes embedded. "+
				"At review: a revision prompt built from the latest validation issues "+
				"(or, with kind='grade', a rubric prompt asking an LLM to score the document "+
				"with the exact same point values as the deterministic validator).",
		),
		mcp.WithString("kind",
			mcp.Description("At review phase only: 'revise' (default) or 'grade'."),
		),
	)
}

// Handle processes the case_prompt tool call.
func (t *PromptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch cfg.CurrentPhase {
	case config.PhaseIntake:
		return t.intakeGuide(cfg)
	case config.PhaseDraft:
		return t.draftPrompt(root, cfg)
	case config.PhaseReview:
		return t.reviewPrompt(root, cfg, req.GetString("kind", "revise"))
	case config.PhaseFinal:
		return mcp.NewToolResultError(
			"the case is at the final phase; call case_export to produce the document"), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf(
			"no prompt for phase %q", cfg.CurrentPhase)), nil
	}
}

func (t *PromptTool) intakeGuide(cfg *config.CaseConfig) (*mcp.CallToolResult, error) {
	out, err := t.renderer.Render(templates.IntakeGuide, templates.IntakeGuideData{
		Name:     cfg.Name,
		Audience: cfg.Audience,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering intake guide: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

func (t *PromptTool) draftPrompt(root string, cfg *config.CaseConfig) (*mcp.CallToolResult, error) {
	intake, err := readPhaseFile(config.PhasePath(root, config.PhaseIntake))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(intake) == "" {
		return mcp.NewToolResultError(
			"no intake notes found; save them with case_draft before asking for a drafting prompt"), nil
	}

	out, err := t.renderer.Render(templates.DraftPrompt, templates.DraftPromptData{
		Name:     cfg.Name,
		Audience: cfg.Audience,
		Intake:   intake,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering draft prompt: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

func (t *PromptTool) reviewPrompt(root string, cfg *config.CaseConfig, kind string) (*mcp.CallToolResult, error) {
	doc, err := currentDocument(root, cfg)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc) == "" {
		return mcp.NewToolResultError(
			"no draft found to review; save one with case_draft first"), nil
	}

	switch kind {
	case "grade":
		return mcp.NewToolResultText(scoring.ScoringPrompt(doc)), nil
	case "revise":
		rep := t.validator.Validate(doc)
		out, err := t.renderer.Render(templates.RevisePrompt, templates.RevisePromptData{
			Name:      cfg.Name,
			Draft:     doc,
			Score:     rep.TotalScore,
			Threshold: pipeline.ScoreThreshold(cfg.Mode),
			Issues:    reportIssues(rep),
		})
		if err != nil {
			return nil, fmt.Errorf("rendering revise prompt: %w", err)
		}
		return mcp.NewToolResultText(out), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown prompt kind %q: use 'revise' or 'grade'", kind)), nil
	}
}

// currentDocument returns the newest document text for the case: the
// review-phase artifact if present, otherwise the original draft.
func currentDocument(root string, cfg *config.CaseConfig) (string, error) {
	doc, err := readPhaseFile(config.PhasePath(root, config.PhaseReview))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(doc) != "" {
		return doc, nil
	}
	return readPhaseFile(config.PhasePath(root, config.PhaseDraft))
}

// reportIssues flattens a validation report's issues, dimension by
// dimension, for display and for revision prompts.
func reportIssues(rep scoring.Report) []string {
	issues := []string{}
	for _, dim := range []struct {
		label string
		res   scoring.DimensionResult
	}{
		{"Strategic evidence", rep.Strategic},
		{"Financial justification", rep.Financial},
		{"Options and alternatives", rep.Options},
		{"Execution completeness", rep.Execution},
	} {
		for _, issue := range dim.res.Issues {
			issues = append(issues, fmt.Sprintf("%s: %s", dim.label, issue))
		}
	}
	for _, issue := range rep.Slop.Issues {
		issues = append(issues, fmt.Sprintf("Language quality: %s", issue))
	}
	return issues
}
