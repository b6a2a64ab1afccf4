package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// --- NewCaseConfig ---

func TestNewCaseConfig_SetsDefaults(t *testing.T) {
	cfg := NewCaseConfig("migrate-crm", "VP Engineering", ModeStandard)

	if cfg.Name != "migrate-crm" {
		t.Errorf("Name = %s, want migrate-crm", cfg.Name)
	}
	if cfg.Audience != "VP Engineering" {
		t.Errorf("Audience = %s, want 'VP Engineering'", cfg.Audience)
	}
	if cfg.Mode != ModeStandard {
		t.Errorf("Mode = %s, want standard", cfg.Mode)
	}
	if cfg.Version != "0.1.0" {
		t.Errorf("Version = %s, want 0.1.0", cfg.Version)
	}
	if cfg.CurrentPhase != PhaseIntake {
		t.Errorf("CurrentPhase = %s, want intake", cfg.CurrentPhase)
	}
	if cfg.LastScore != 0 {
		t.Errorf("LastScore = %d, want 0", cfg.LastScore)
	}
}

func TestNewCaseConfig_InitPhaseCompleted(t *testing.T) {
	cfg := NewCaseConfig("x", "y", ModeExecutive)

	initStatus, ok := cfg.PhaseStatus[PhaseInit]
	if !ok {
		t.Fatal("init phase status missing")
	}
	if initStatus.Status != "completed" {
		t.Errorf("init status = %s, want completed", initStatus.Status)
	}
	if initStatus.Iterations != 1 {
		t.Errorf("init iterations = %d, want 1", initStatus.Iterations)
	}
}

func TestNewCaseConfig_OtherPhasesPending(t *testing.T) {
	cfg := NewCaseConfig("x", "y", ModeStandard)

	for _, phase := range PhaseOrder {
		if phase == PhaseInit {
			continue
		}
		st, ok := cfg.PhaseStatus[phase]
		if !ok {
			t.Errorf("phase %s missing from PhaseStatus", phase)
			continue
		}
		if st.Status != "pending" {
			t.Errorf("phase %s status = %s, want pending", phase, st.Status)
		}
	}
}

func TestNewCaseConfig_HasTimestamps(t *testing.T) {
	cfg := NewCaseConfig("x", "y", ModeStandard)

	if cfg.CreatedAt == "" {
		t.Error("CreatedAt should be set")
	}
	if cfg.UpdatedAt == "" {
		t.Error("UpdatedAt should be set")
	}
}

// --- ParseMode ---

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeStandard, false},
		{"standard", ModeStandard, false},
		{"executive", ModeExecutive, false},
		{"casual", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// --- Path helpers ---

func TestPathHelpers(t *testing.T) {
	root := filepath.Join("some", "project")

	if got := ConfigPath(root); got != filepath.Join(root, "bja", "case.json") {
		t.Errorf("ConfigPath = %s", got)
	}
	if got := PhasePath(root, PhaseDraft); got != filepath.Join(root, "bja", "draft.md") {
		t.Errorf("PhasePath = %s", got)
	}
}

// --- FileStore ---

func TestFileStore_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewFileStore()

	cfg := NewCaseConfig("roundtrip", "CFO", ModeExecutive)
	if err := store.Save(tmpDir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "roundtrip" || loaded.Mode != ModeExecutive {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.CurrentPhase != PhaseIntake {
		t.Errorf("CurrentPhase = %s, want intake", loaded.CurrentPhase)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore()

	if _, err := store.Load(t.TempDir()); err == nil {
		t.Error("expected an error for a missing case file")
	}
}

func TestFileStore_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewFileStore()

	if store.Exists(tmpDir) {
		t.Error("Exists = true before Save")
	}
	if err := store.Save(tmpDir, NewCaseConfig("x", "y", ModeStandard)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !store.Exists(tmpDir) {
		t.Error("Exists = false after Save")
	}
}

func TestFileStore_WritesValidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewFileStore()

	if err := store.Save(tmpDir, NewCaseConfig("x", "y", ModeStandard)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(ConfigPath(tmpDir))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("case file is not valid JSON: %v", err)
	}
	if _, ok := raw["current_phase"]; !ok {
		t.Error("case file missing current_phase field")
	}
}
