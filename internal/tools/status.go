package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/history"
	"github.com/bordenet/business-justification-assistant/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the case_status MCP tool.
type StatusTool struct {
	store config.Store
	hist  *history.Store
}

// NewStatusTool creates a StatusTool with its dependencies. hist may be nil.
func NewStatusTool(store config.Store, hist *history.Store) *StatusTool {
	return &StatusTool{store: store, hist: hist}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("case_status",
		mcp.WithDescription(
			"Show where the case stands: phase progress, last validation score "+
				"against the gate, and which artifacts exist on disk.",
		),
	)
}

// Handle processes the case_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStatus(root, cfg, t.hist)), nil
}

// formatStatus renders the case overview. Shared with the status prompt
// and the status resource so all three show the same picture.
func formatStatus(root string, cfg *config.CaseConfig, hist *history.Store) string {
	threshold := pipeline.ScoreThreshold(cfg.Mode)

	var b strings.Builder
	fmt.Fprintf(&b, "# Case: %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "Audience: %s | Mode: %s (gate %d) | Current phase: **%s**\n\n",
		cfg.Audience, cfg.Mode, threshold, cfg.CurrentPhase)

	b.WriteString("| Phase | Status | Iterations | Artifact |\n")
	b.WriteString("|-------|--------|------------|----------|\n")
	for _, phase := range config.PhaseOrder {
		st := cfg.PhaseStatus[phase]
		marker := " "
		if phase == cfg.CurrentPhase {
			marker = " <-"
		}
		artifact := "-"
		if phase != config.PhaseInit {
			if _, err := os.Stat(config.PhasePath(root, phase)); err == nil {
				artifact = fmt.Sprintf("bja/%s.md", phase)
			}
		}
		fmt.Fprintf(&b, "| %s%s | %s | %d | %s |\n",
			phase, marker, st.Status, st.Iterations, artifact)
	}
	b.WriteString("\n")

	if cfg.LastScore > 0 {
		verdict := "below the gate"
		if cfg.LastScore >= threshold {
			verdict = "clears the gate"
		}
		fmt.Fprintf(&b, "Last score: **%d/100** (%s)\n\n", cfg.LastScore, verdict)
	} else {
		b.WriteString("No validation score recorded yet.\n\n")
	}

	if hist != nil {
		if drafts, err := hist.Drafts(cfg.Name, 1); err == nil && len(drafts) > 0 {
			fmt.Fprintf(&b, "Latest draft in history: %s revision %d (%s)\n\n",
				drafts[0].Phase, drafts[0].Revision, drafts[0].CreatedAt)
		}
	}

	b.WriteString("## Next Step\n\n")
	b.WriteString(phaseGuidance[cfg.CurrentPhase])
	return b.String()
}
