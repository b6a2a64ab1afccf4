package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/history"
	"github.com/bordenet/business-justification-assistant/internal/pipeline"
	"github.com/bordenet/business-justification-assistant/internal/scoring"
	"github.com/mark3labs/mcp-go/mcp"
)

// ScoreTool handles the case_score MCP tool.
// It runs the deterministic validator and records the result on the case.
type ScoreTool struct {
	store     config.Store
	hist      *history.Store
	validator *scoring.Validator
}

// NewScoreTool creates a ScoreTool with its dependencies. hist may be nil.
func NewScoreTool(store config.Store, hist *history.Store, validator *scoring.Validator) *ScoreTool {
	return &ScoreTool{store: store, hist: hist, validator: validator}
}

// Definition returns the MCP tool definition for registration.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("case_score",
		mcp.WithDescription(
			"Score the business case against the rubric: strategic evidence (30), "+
				"financial justification (25), options and alternatives (25), execution "+
				"completeness (20), minus a capped deduction for low-information language. "+
				"Same input always yields the same score. The result is stored on the "+
				"case and gates advancement past the review phase.",
		),
		mcp.WithString("content",
			mcp.Description("Document to score. Defaults to the case's newest saved draft."),
		),
	)
}

// Handle processes the case_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc := req.GetString("content", "")
	if strings.TrimSpace(doc) == "" {
		doc, err = currentDocument(root, cfg)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(doc) == "" {
		return mcp.NewToolResultError(
			"nothing to score: save a draft with case_draft or pass the document as 'content'"), nil
	}

	rep := t.validator.Validate(doc)

	cfg.LastScore = rep.TotalScore
	if err := t.store.Save(root, cfg); err != nil {
		return nil, fmt.Errorf("saving case: %w", err)
	}

	if t.hist != nil {
		var draftID int64
		if latest, histErr := t.hist.LatestDraft(cfg.Name, string(cfg.CurrentPhase)); histErr == nil && latest != nil {
			draftID = latest.ID
		}
		// Best effort; scoring still succeeds if history is unavailable.
		_, _ = t.hist.SaveReport(cfg.Name, draftID, rep)
	}

	return mcp.NewToolResultText(formatReport(cfg, rep)), nil
}

// formatReport renders a validation report as markdown with the gate verdict.
func formatReport(cfg *config.CaseConfig, rep scoring.Report) string {
	threshold := pipeline.ScoreThreshold(cfg.Mode)

	var b strings.Builder
	fmt.Fprintf(&b, "# Validation Report: %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "**Total: %d/100** (gate: %d, %s mode)\n\n", rep.TotalScore, threshold, cfg.Mode)

	writeDimension(&b, "Strategic Evidence", rep.Strategic)
	writeDimension(&b, "Financial Justification", rep.Financial)
	writeDimension(&b, "Options & Alternatives", rep.Options)
	writeDimension(&b, "Execution Completeness", rep.Execution)

	if rep.Slop.Deduction > 0 {
		fmt.Fprintf(&b, "## Language Quality: -%d\n\n", rep.Slop.Deduction)
		for _, issue := range rep.Slop.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Next Step\n\n")
	if rep.TotalScore >= threshold {
		fmt.Fprintf(&b, "The score clears the %d-point gate. ", threshold)
		if cfg.CurrentPhase == config.PhaseReview {
			b.WriteString("Call `case_advance` to move to final, then `case_export`.")
		} else {
			b.WriteString("Call `case_advance` when you are ready to move on.")
		}
	} else {
		fmt.Fprintf(&b,
			"The score is below the %d-point gate. Call `case_prompt` for a revision "+
				"prompt that targets the issues above, revise with your LLM, and save "+
				"the result with `case_draft`.", threshold)
	}
	return b.String()
}

func writeDimension(b *strings.Builder, label string, res scoring.DimensionResult) {
	fmt.Fprintf(b, "## %s: %d/%d\n\n", label, res.Score, res.MaxScore)
	for _, s := range res.Strengths {
		fmt.Fprintf(b, "- [x] %s\n", s)
	}
	for _, issue := range res.Issues {
		fmt.Fprintf(b, "- [ ] %s\n", issue)
	}
	b.WriteString("\n")
}
