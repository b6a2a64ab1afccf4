// Package prompts implements MCP prompt handlers for the business case
// workflow.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the bja-start MCP prompt.
// It guides the AI to initialize a new case and begin the workflow.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("bja-start",
		mcp.WithPromptDescription(
			"Start a new business justification case. "+
				"Walks you from collecting the raw facts through drafting, "+
				"deterministic scoring, and export of the final document.",
		),
		mcp.WithArgument("case_name",
			mcp.ArgumentDescription("Short name for the business case"),
		),
		mcp.WithArgument("mode",
			mcp.ArgumentDescription(
				"Review strictness: 'standard' (gate at 60/100) or 'executive' (gate at 75/100). Default: standard",
			),
		),
	)
}

// Handle processes the bja-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	caseName := "my-case"
	if args := req.Params.Arguments; args != nil {
		if name, ok := args["case_name"]; ok && name != "" {
			caseName = name
		}
	}

	mode := "standard"
	if args := req.Params.Arguments; args != nil {
		if m, ok := args["mode"]; ok && m != "" {
			mode = m
		}
	}

	gateNote := "Standard mode gates the review phase at 60/100."
	if mode == "executive" {
		gateNote = "Executive mode gates the review phase at 75/100, so expect more revision rounds."
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Start business case: %s", caseName),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to build a business justification called '%s' in %s mode.\n\n"+
						"Please:\n"+
						"1. Run `case_init` with case_name='%s', mode='%s', and ask me who the audience is\n"+
						"2. Run `case_prompt` and walk me through the intake questions one at a time\n"+
						"3. Save my answers with `case_draft`, then advance and hand me the drafting prompt for my own LLM\n"+
						"4. When I paste the draft back, save it, run `case_score`, and help me revise until the gate passes\n\n"+
						"%s",
					caseName, mode, caseName, mode, gateNote,
				)),
			},
		},
	}, nil
}
