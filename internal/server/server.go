// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools/prompts/resources that depend on
// abstractions. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/bordenet/business-justification-assistant/internal/history"
	"github.com/bordenet/business-justification-assistant/internal/prompts"
	"github.com/bordenet/business-justification-assistant/internal/resources"
	"github.com/bordenet/business-justification-assistant/internal/scoring"
	"github.com/bordenet/business-justification-assistant/internal/slop"
	"github.com/bordenet/business-justification-assistant/internal/templates"
	"github.com/bordenet/business-justification-assistant/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the history store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if history init failed.
func New() (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	store := config.NewFileStore()

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, noop, fmt.Errorf("creating template renderer: %w", err)
	}

	validator := scoring.New(slop.New())

	// History is an independent subsystem: if it fails to initialize,
	// the workflow tools continue working without a revision trail.
	cleanup := noop
	hist, histErr := history.New(history.DefaultConfig())
	if histErr != nil {
		log.Printf("WARNING: history subsystem disabled: %v", histErr)
		hist = nil
	} else {
		cleanup = func() {
			if err := hist.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"bja",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register workflow tools ---

	initTool := tools.NewInitTool(store)
	s.AddTool(initTool.Definition(), initTool.Handle)

	promptTool := tools.NewPromptTool(store, renderer, validator)
	s.AddTool(promptTool.Definition(), promptTool.Handle)

	draftTool := tools.NewDraftTool(store, hist)
	s.AddTool(draftTool.Definition(), draftTool.Handle)

	scoreTool := tools.NewScoreTool(store, hist, validator)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	advanceTool := tools.NewAdvanceTool(store)
	s.AddTool(advanceTool.Definition(), advanceTool.Handle)

	statusTool := tools.NewStatusTool(store, hist)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	historyTool := tools.NewHistoryTool(store, hist)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	exportTool := tools.NewExportTool(store, renderer, validator)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(store)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used as the default when history
// is disabled or hasn't been initialized.
func noop() {}

// serverInstructions returns the system-level guidance sent to MCP hosts.
func serverInstructions() string {
	return `You have access to bja, a business justification assistant.

## WHEN TO ACTIVATE bja

Proactively suggest bja when the user:
- Needs to justify a purchase, hire, migration, or project to leadership
- Says things like "I need to convince my boss...", "write a business case for..."
- Has a proposal that keeps getting rejected for being vague

## HOW THE WORKFLOW RUNS

bja does not write the document for you. It orchestrates:

1. case_init, then case_prompt: you collect the user's raw facts at intake
2. case_advance to draft: hand the user the drafting prompt for THEIR LLM,
   and save the result they paste back with case_draft
3. case_advance to review: case_score runs a deterministic validator over
   the draft. Same text, same score, every time. Below the gate, case_prompt
   produces a targeted revision prompt; loop until the gate passes
4. case_advance to final, then case_export writes the finished document

The score rewards quantified problems, named sources, explicit ROI
arithmetic, payback and TCO figures, a Do-Nothing option with at least two
alternatives, a recommendation, risks with mitigations, and stakeholders.
It deducts for buzzwords, hedging, and filler. Do not try to game it;
fix the document instead.

## IMPORTANT

- Never invent numbers for the user's case. Ask for them.
- Always show the user the validation issues verbatim: they are the
  revision checklist.
- case_history searches every saved revision when the user wants to
  recover earlier wording.`
}
