package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the bja-status MCP prompt.
// It instructs the AI to read and present the current case state.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("bja-status",
		mcp.WithPromptDescription(
			"Check the current status of your business case. "+
				"Shows phase progress, the last validation score against the "+
				"gate, and what to do next.",
		),
	)
}

// Handle processes the bja-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Business Case Status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `case_status` to check my business case.\n\n" +
						"Then:\n" +
						"1. Show me the phase progress in a clear, visual format\n" +
						"2. If a score is recorded, say how far it is from the gate\n" +
						"3. Tell me exactly what I should do next\n" +
						"4. If the case is stuck below the gate, summarize the biggest scoring gaps",
				),
			},
		},
	}, nil
}
