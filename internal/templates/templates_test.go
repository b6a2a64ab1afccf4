package templates

import (
	"strings"
	"testing"
)

// --- NewRenderer ---

func TestNewRenderer_Succeeds(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	if r == nil {
		t.Fatal("NewRenderer() returned nil")
	}
}

// --- Render: DraftPrompt ---

func TestRender_DraftPrompt(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	data := DraftPromptData{
		Name:     "Migrate CRM",
		Audience: "the CFO",
		Intake:   "Support tickets cost $40 each; we handle 2,000 a month.",
	}

	result, err := r.Render(DraftPrompt, data)
	if err != nil {
		t.Fatalf("Render(DraftPrompt) failed: %v", err)
	}

	checks := []string{
		`"Migrate CRM"`,
		"for the CFO",
		"Executive Summary",
		"(gain - cost) / cost",
		"Do Nothing",
		"Risks and Mitigations",
		"Support tickets cost $40 each",
		"[NEEDED:",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("DraftPrompt output missing: %q", check)
		}
	}
}

// --- Render: RevisePrompt ---

func TestRender_RevisePrompt(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	data := RevisePromptData{
		Name:      "Migrate CRM",
		Draft:     "## Problem\n\nIt is slow.",
		Score:     42,
		Threshold: 60,
		Issues:    []string{"No ROI analysis", "No stakeholders section"},
	}

	result, err := r.Render(RevisePrompt, data)
	if err != nil {
		t.Fatalf("Render(RevisePrompt) failed: %v", err)
	}

	checks := []string{
		"scored it 42/100",
		"at least 60",
		"- No ROI analysis",
		"- No stakeholders section",
		"It is slow.",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("RevisePrompt output missing: %q", check)
		}
	}
}

// --- Render: FinalDocument ---

func TestRender_FinalDocument(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	data := FinalDocumentData{
		Name:        "Migrate CRM",
		Audience:    "CFO",
		Content:     "# Executive Summary\n\nBuy it.",
		Score:       82,
		GeneratedAt: "2026-01-02T15:04:05Z",
	}

	result, err := r.Render(FinalDocument, data)
	if err != nil {
		t.Fatalf("Render(FinalDocument) failed: %v", err)
	}

	if !strings.Contains(result, "readiness score: 82/100") {
		t.Error("final document missing the score comment")
	}
	if !strings.Contains(result, "# Executive Summary") {
		t.Error("final document missing the content body")
	}
}

// --- Unknown template ---

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	if _, err := r.Render(Template("nope"), nil); err == nil {
		t.Error("expected an error for an unknown template")
	}
}

// --- IntakeGuide ---

func TestRender_IntakeGuide(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	result, err := r.Render(IntakeGuide, IntakeGuideData{Name: "Migrate CRM", Audience: "the CFO"})
	if err != nil {
		t.Fatalf("Render(IntakeGuide) failed: %v", err)
	}
	if !strings.Contains(result, "# Migrate CRM — Intake") {
		t.Error("intake guide missing the title")
	}
	if !strings.Contains(result, "the CFO") {
		t.Error("intake guide missing the audience")
	}
}
