package history

import (
	"strings"
	"testing"

	"github.com/bordenet/business-justification-assistant/internal/scoring"
	"github.com/bordenet/business-justification-assistant/internal/slop"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// --- Drafts ---

func TestSaveDraft_RevisionsCountUp(t *testing.T) {
	s := newTestStore(t)

	first, err := s.SaveDraft("migrate-crm", "review", "draft one")
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	second, err := s.SaveDraft("migrate-crm", "review", "draft two")
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	if first.Revision != 1 || second.Revision != 2 {
		t.Errorf("revisions = %d, %d; want 1, 2", first.Revision, second.Revision)
	}

	// A different phase starts its own revision counter.
	other, err := s.SaveDraft("migrate-crm", "intake", "notes")
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if other.Revision != 1 {
		t.Errorf("intake revision = %d, want 1", other.Revision)
	}
}

func TestLatestDraft(t *testing.T) {
	s := newTestStore(t)

	if d, err := s.LatestDraft("missing", "review"); err != nil || d != nil {
		t.Errorf("LatestDraft(missing) = %v, %v; want nil, nil", d, err)
	}

	if _, err := s.SaveDraft("migrate-crm", "review", "old"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if _, err := s.SaveDraft("migrate-crm", "review", "new"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	latest, err := s.LatestDraft("migrate-crm", "review")
	if err != nil {
		t.Fatalf("LatestDraft: %v", err)
	}
	if latest == nil || latest.Content != "new" {
		t.Errorf("latest = %+v, want content 'new'", latest)
	}
}

func TestDrafts_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, content := range []string{"a", "b", "c"} {
		if _, err := s.SaveDraft("migrate-crm", "review", content); err != nil {
			t.Fatalf("SaveDraft: %v", err)
		}
	}

	drafts, err := s.Drafts("migrate-crm", 2)
	if err != nil {
		t.Fatalf("Drafts: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("len = %d, want 2 (limit)", len(drafts))
	}
	if drafts[0].Content != "c" {
		t.Errorf("first = %q, want 'c' (newest)", drafts[0].Content)
	}
}

// --- Search ---

func TestSearchDrafts(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveDraft("migrate-crm", "review", "the payback period is six months"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if _, err := s.SaveDraft("migrate-crm", "intake", "tickets cost forty dollars"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	results, err := s.SearchDrafts("payback", 10)
	if err != nil {
		t.Fatalf("SearchDrafts: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if !strings.Contains(results[0].Content, "payback") {
		t.Errorf("unexpected hit: %q", results[0].Content)
	}
}

func TestSearchDrafts_QuotesHostileInput(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveDraft("migrate-crm", "review", "plain text"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	// FTS5 operators in user input must not cause query errors.
	if _, err := s.SearchDrafts(`"AND (NOT`, 10); err != nil {
		t.Errorf("SearchDrafts with hostile input: %v", err)
	}

	if results, err := s.SearchDrafts("   ", 10); err != nil || results != nil {
		t.Errorf("blank query = %v, %v; want nil, nil", results, err)
	}
}

// --- Reports ---

func TestSaveAndLatestReport(t *testing.T) {
	s := newTestStore(t)

	v := scoring.New(slop.New())
	rep := v.Validate("## Problem\n\nOnboarding takes 12 weeks and costs $8,000 per hire at 15% attrition.")

	saved, err := s.SaveReport("migrate-crm", 0, rep)
	if err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	if saved.Total != rep.TotalScore {
		t.Errorf("Total = %d, want %d", saved.Total, rep.TotalScore)
	}
	if saved.DraftID != 0 {
		t.Errorf("DraftID = %d, want 0 for ad hoc scoring", saved.DraftID)
	}
	if !strings.Contains(saved.Feedback, `"total_score"`) {
		t.Error("feedback JSON missing total_score")
	}

	latest, err := s.LatestReport("migrate-crm")
	if err != nil {
		t.Fatalf("LatestReport: %v", err)
	}
	if latest == nil || latest.ID != saved.ID {
		t.Errorf("latest = %+v, want id %d", latest, saved.ID)
	}
}

func TestLatestReport_NoneScored(t *testing.T) {
	s := newTestStore(t)

	rep, err := s.LatestReport("never-scored")
	if err != nil || rep != nil {
		t.Errorf("LatestReport = %v, %v; want nil, nil", rep, err)
	}
}

func TestReports_TrailNewestFirst(t *testing.T) {
	s := newTestStore(t)
	v := scoring.New(slop.New())

	docs := []string{
		"nothing here",
		"## Problem\n\n12 weeks, $8,000, 15% attrition per a Gartner study.",
	}
	for _, doc := range docs {
		if _, err := s.SaveReport("migrate-crm", 0, v.Validate(doc)); err != nil {
			t.Fatalf("SaveReport: %v", err)
		}
	}

	trail, err := s.Reports("migrate-crm", 10)
	if err != nil {
		t.Fatalf("Reports: %v", err)
	}
	if len(trail) != 2 {
		t.Fatalf("len = %d, want 2", len(trail))
	}
	if trail[0].Total < trail[1].Total {
		t.Errorf("newest report should be the higher-scoring second run: %d vs %d",
			trail[0].Total, trail[1].Total)
	}
}
