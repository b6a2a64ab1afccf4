package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/history"
	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool handles the case_history MCP tool.
// It surfaces past drafts and score reports from the local SQLite store.
type HistoryTool struct {
	store config.Store
	hist  *history.Store
}

// NewHistoryTool creates a HistoryTool with its dependencies. hist may be
// nil when the history database could not be opened.
func NewHistoryTool(store config.Store, hist *history.Store) *HistoryTool {
	return &HistoryTool{store: store, hist: hist}
}

// Definition returns the MCP tool definition for registration.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("case_history",
		mcp.WithDescription(
			"Browse the case's revision history. Without arguments, lists recent "+
				"drafts and their scores. With 'query', runs a full-text search over "+
				"all saved draft content.",
		),
		mcp.WithString("query",
			mcp.Description("Optional full-text search terms, e.g. 'payback period'."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return. Default: 10."),
		),
	)
}

// Handle processes the case_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.hist == nil {
		return mcp.NewToolResultError(
			"the history store is unavailable; drafts and scores are not being recorded this session"), nil
	}

	root, err := findCaseRoot()
	if err != nil {
		return nil, fmt.Errorf("finding case root: %w", err)
	}
	cfg, err := t.store.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit := intArg(req, "limit", 10)
	if limit < 1 {
		limit = 10
	}

	if query := strings.TrimSpace(req.GetString("query", "")); query != "" {
		return t.search(query, limit)
	}
	return t.recent(cfg.Name, limit)
}

func (t *HistoryTool) search(query string, limit int) (*mcp.CallToolResult, error) {
	results, err := t.hist.SearchDrafts(query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching drafts: %w", err)
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No drafts match %q.", query)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Draft Search: %q\n\n", query)
	for _, res := range results {
		fmt.Fprintf(&b, "## %s / %s revision %d (%s)\n\n",
			res.Draft.CaseName, res.Draft.Phase, res.Draft.Revision, res.Draft.CreatedAt)
		b.WriteString(excerpt(res.Draft.Content) + "\n\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (t *HistoryTool) recent(caseName string, limit int) (*mcp.CallToolResult, error) {
	drafts, err := t.hist.Drafts(caseName, limit)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	reports, err := t.hist.Reports(caseName, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	if len(drafts) == 0 && len(reports) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No history recorded for case %q yet. Save content with case_draft to start a trail.",
			caseName)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# History: %s\n\n", caseName)

	if len(drafts) > 0 {
		b.WriteString("## Drafts (newest first)\n\n")
		for _, d := range drafts {
			fmt.Fprintf(&b, "- %s revision %d, %d bytes (%s)\n",
				d.Phase, d.Revision, len(d.Content), d.CreatedAt)
		}
		b.WriteString("\n")
	}

	if len(reports) > 0 {
		b.WriteString("## Scores (newest first)\n\n")
		for _, r := range reports {
			fmt.Fprintf(&b, "- %d/100 (strategic %d, financial %d, options %d, execution %d, deduction %d) at %s\n",
				r.Total, r.Strategic, r.Financial, r.Options, r.Execution, r.Deduction, r.CreatedAt)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// excerpt trims draft content to a search-result sized snippet.
func excerpt(content string) string {
	const max = 240
	content = strings.TrimSpace(content)
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}
