package tools

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/bordenet/business-justification-assistant/internal/config"
)

// --- DraftTool ---

func TestDraftTool_SavesPhaseArtifact(t *testing.T) {
	root, cleanup := setupTestCase(t, config.ModeStandard)
	defer cleanup()

	store := config.NewFileStore()
	tool := NewDraftTool(store, nil)

	content := "Onboarding takes 12 weeks. We want $120,000 for tooling."
	result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{
		"content": content,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	saved, err := os.ReadFile(config.PhasePath(root, config.PhaseIntake))
	if err != nil {
		t.Fatalf("read intake artifact: %v", err)
	}
	if string(saved) != content {
		t.Errorf("artifact = %q, want %q", saved, content)
	}

	cfg, err := store.Load(root)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PhaseStatus[config.PhaseIntake].Iterations != 1 {
		t.Errorf("intake iterations = %d, want 1",
			cfg.PhaseStatus[config.PhaseIntake].Iterations)
	}
	if cfg.PhaseStatus[config.PhaseIntake].Status != "in_progress" {
		t.Errorf("intake status = %q, want in_progress",
			cfg.PhaseStatus[config.PhaseIntake].Status)
	}
}

func TestDraftTool_MissingContent(t *testing.T) {
	_, cleanup := setupTestCase(t, config.ModeStandard)
	defer cleanup()

	tool := NewDraftTool(config.NewFileStore(), nil)
	result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("should return error when content is missing")
	}
}

func TestDraftTool_RecordsRevisionHistory(t *testing.T) {
	_, cleanup := setupTestCase(t, config.ModeStandard)
	defer cleanup()

	hist := newTestHistory(t)
	tool := NewDraftTool(config.NewFileStore(), hist)

	for i := 0; i < 2; i++ {
		result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{
			"content": "revision content",
		}))
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("expected success, got error: %s", getResultText(result))
		}
	}

	latest, err := hist.LatestDraft("test-case", string(config.PhaseIntake))
	if err != nil {
		t.Fatalf("LatestDraft: %v", err)
	}
	if latest == nil || latest.Revision != 2 {
		t.Errorf("latest revision = %+v, want revision 2", latest)
	}

	result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{
		"content": "third revision",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	text := getResultText(result)
	if !strings.Contains(text, "revision 3") {
		t.Errorf("response should cite the recorded revision, got: %s", text)
	}
}

func TestDraftTool_RejectsFinalPhase(t *testing.T) {
	_, cleanup := setupTestCaseAtPhase(t, config.ModeStandard, config.PhaseFinal)
	defer cleanup()

	tool := NewDraftTool(config.NewFileStore(), nil)
	result, err := tool.Handle(context.Background(), callReq(map[string]interface{}{
		"content": "late edit",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("saving drafts at the final phase should be an error")
	}
}
