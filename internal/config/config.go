// Package config defines the business case file (bja/case.json) and its
// persistence. The case file tracks the workflow phases, the interaction
// mode, and the last validation score for one business justification.
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Mode controls how demanding the review gate is.
type Mode string

const (
	// ModeStandard targets internal proposals. Review gate at 60/100.
	ModeStandard Mode = "standard"
	// ModeExecutive targets board-level asks. Review gate at 75/100.
	ModeExecutive Mode = "executive"
)

// Phase is one step of the business case workflow.
type Phase string

const (
	PhaseInit   Phase = "init"   // case file created
	PhaseIntake Phase = "intake" // user writes the raw problem and constraints
	PhaseDraft  Phase = "draft"  // external LLM drafts the case from the intake
	PhaseReview Phase = "review" // deterministic validation + revision loop
	PhaseFinal  Phase = "final"  // assembled, export-ready document
)

// PhaseOrder is the linear workflow. The review phase is score-gated.
var PhaseOrder = []Phase{PhaseInit, PhaseIntake, PhaseDraft, PhaseReview, PhaseFinal}

// PhaseStatus tracks progress through a single phase.
type PhaseStatus struct {
	Status      string `json:"status"` // pending | in_progress | completed
	Iterations  int    `json:"iterations"`
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// CaseConfig is the persisted state of one business case.
type CaseConfig struct {
	Name         string                `json:"name"`
	Audience     string                `json:"audience"`
	Mode         Mode                  `json:"mode"`
	Version      string                `json:"version"`
	CurrentPhase Phase                 `json:"current_phase"`
	PhaseStatus  map[Phase]PhaseStatus `json:"phase_status"`
	LastScore    int                   `json:"last_score"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// timeNow is a package-level variable for testability.
var timeNow = time.Now

func nowUTC() string {
	return timeNow().UTC().Format(time.RFC3339)
}

// NewCaseConfig creates a fresh case with the init phase completed and the
// workflow positioned at intake.
func NewCaseConfig(name, audience string, mode Mode) *CaseConfig {
	now := nowUTC()

	statuses := make(map[Phase]PhaseStatus, len(PhaseOrder))
	for _, p := range PhaseOrder {
		statuses[p] = PhaseStatus{Status: "pending"}
	}
	statuses[PhaseInit] = PhaseStatus{
		Status:      "completed",
		Iterations:  1,
		StartedAt:   now,
		CompletedAt: now,
	}

	return &CaseConfig{
		Name:         name,
		Audience:     audience,
		Mode:         mode,
		Version:      "0.1.0",
		CurrentPhase: PhaseIntake,
		PhaseStatus:  statuses,
		LastScore:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ParseMode validates a mode string, defaulting empty input to standard.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeStandard, nil
	case ModeStandard, ModeExecutive:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (use %q or %q)", s, ModeStandard, ModeExecutive)
	}
}

// CaseDir returns the workflow directory under the project root.
func CaseDir(root string) string {
	return filepath.Join(root, "bja")
}

// ConfigPath returns the location of the case file.
func ConfigPath(root string) string {
	return filepath.Join(CaseDir(root), "case.json")
}

// PhasePath returns the markdown artifact path for a phase.
func PhasePath(root string, phase Phase) string {
	return filepath.Join(CaseDir(root), string(phase)+".md")
}
