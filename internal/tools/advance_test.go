package tools

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/bordenet/business-justification-assistant/internal/config"
)

// --- AdvanceTool ---

func TestAdvanceTool_IntakeToDraft(t *testing.T) {
	root, cleanup := setupTestCase(t, config.ModeStandard)
	defer cleanup()

	store := config.NewFileStore()
	tool := NewAdvanceTool(store)

	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	cfg, err := store.Load(root)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CurrentPhase != config.PhaseDraft {
		t.Errorf("CurrentPhase = %s, want %s", cfg.CurrentPhase, config.PhaseDraft)
	}
	if !strings.Contains(getResultText(result), "case_prompt") {
		t.Errorf("arrival at draft should direct to case_prompt, got: %s", getResultText(result))
	}
}

func TestAdvanceTool_ReviewGateBlocks(t *testing.T) {
	root, cleanup := setupTestCaseAtPhase(t, config.ModeStandard, config.PhaseReview)
	defer cleanup()

	store := config.NewFileStore()
	cfg, _ := store.Load(root)
	cfg.LastScore = 59
	if err := store.Save(root, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	tool := NewAdvanceTool(store)
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("advancing past review at 59/100 should be blocked in standard mode")
	}

	reloaded, _ := store.Load(root)
	if reloaded.CurrentPhase != config.PhaseReview {
		t.Errorf("phase moved to %s despite the gate", reloaded.CurrentPhase)
	}
}

func TestAdvanceTool_ReviewGatePasses(t *testing.T) {
	root, cleanup := setupTestCaseAtPhase(t, config.ModeStandard, config.PhaseReview)
	defer cleanup()

	store := config.NewFileStore()
	cfg, _ := store.Load(root)
	cfg.LastScore = 60
	if err := store.Save(root, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	tool := NewAdvanceTool(store)
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("60/100 should pass the standard gate, got: %s", getResultText(result))
	}

	reloaded, _ := store.Load(root)
	if reloaded.CurrentPhase != config.PhaseFinal {
		t.Errorf("CurrentPhase = %s, want %s", reloaded.CurrentPhase, config.PhaseFinal)
	}
}

func TestAdvanceTool_ExecutiveGateStricter(t *testing.T) {
	root, cleanup := setupTestCaseAtPhase(t, config.ModeExecutive, config.PhaseReview)
	defer cleanup()

	store := config.NewFileStore()
	cfg, _ := store.Load(root)
	cfg.LastScore = 70
	if err := store.Save(root, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	tool := NewAdvanceTool(store)
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("70/100 should be blocked by the executive 75-point gate")
	}
}

func TestAdvanceTool_AlreadyFinal(t *testing.T) {
	_, cleanup := setupTestCaseAtPhase(t, config.ModeStandard, config.PhaseFinal)
	defer cleanup()

	tool := NewAdvanceTool(config.NewFileStore())
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("advancing from the final phase should be an error")
	}
}

// --- StatusTool ---

func TestStatusTool_ShowsProgress(t *testing.T) {
	root, cleanup := setupTestCase(t, config.ModeStandard)
	defer cleanup()

	if err := writePhaseFile(config.PhasePath(root, config.PhaseIntake), "notes"); err != nil {
		t.Fatalf("write intake: %v", err)
	}

	tool := NewStatusTool(config.NewFileStore(), nil)
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected status, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	for _, want := range []string{
		"test-case",
		"gate 60",
		"**intake**",
		"bja/intake.md",
		"No validation score recorded yet",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("status should contain %q, got: %s", want, text)
		}
	}
}

func TestStatusTool_ShowsScoreVerdict(t *testing.T) {
	root, cleanup := setupTestCaseAtPhase(t, config.ModeStandard, config.PhaseReview)
	defer cleanup()

	store := config.NewFileStore()
	cfg, _ := store.Load(root)
	cfg.LastScore = 72
	if err := store.Save(root, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	tool := NewStatusTool(store, nil)
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := getResultText(result)
	if !strings.Contains(text, "72/100") || !strings.Contains(text, "clears the gate") {
		t.Errorf("status should show the score and verdict, got: %s", text)
	}
}

func TestStatusTool_NoCase(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir to tmpDir: %v", err)
	}
	defer func() { _ = os.Chdir(origDir) }()

	tool := NewStatusTool(config.NewFileStore(), nil)
	result, err := tool.Handle(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("status without a case should be an error")
	}
	if !strings.Contains(getResultText(result), "case_init") {
		t.Errorf("error should point at case_init, got: %s", getResultText(result))
	}
}
