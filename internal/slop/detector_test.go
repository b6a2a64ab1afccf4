package slop

import (
	"strings"
	"testing"
)

func TestDetect_CleanTextHasNoPenalty(t *testing.T) {
	d := New()

	penalty, issues := d.Detect("Onboarding takes 12 weeks and costs $8,000 per hire.")
	if penalty != 0 {
		t.Errorf("penalty = %d, want 0", penalty)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestDetect_BuzzwordsCountIndividually(t *testing.T) {
	d := New()

	penalty, issues := d.Detect("We leverage synergy for a seamless paradigm.")
	if penalty != 4 {
		t.Errorf("penalty = %d, want 4 (one per buzzword)", penalty)
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %d, want 1", len(issues))
	}
	if !strings.Contains(issues[0], "buzzword") {
		t.Errorf("issue = %q, want a buzzword complaint", issues[0])
	}
}

func TestDetect_HedgingHasAnAllowance(t *testing.T) {
	d := New()

	// Two hedges are tolerated.
	penalty, _ := d.Detect("This might work and could help.")
	if penalty != 0 {
		t.Errorf("penalty = %d, want 0 within the hedge allowance", penalty)
	}

	// Beyond the allowance, each additional hedge counts.
	penalty, issues := d.Detect("It might possibly work; perhaps it could, arguably.")
	if penalty != 3 {
		t.Errorf("penalty = %d, want 3 (5 hedges - allowance of 2)", penalty)
	}
	if len(issues) != 1 || !strings.Contains(issues[0], "hedging") {
		t.Errorf("issues = %v, want a single hedging complaint", issues)
	}
}

func TestDetect_FillerPhrases(t *testing.T) {
	d := New()

	penalty, issues := d.Detect("At the end of the day, needless to say, we should act.")
	if penalty != 2 {
		t.Errorf("penalty = %d, want 2", penalty)
	}
	if len(issues) != 1 {
		t.Errorf("issues = %d, want 1", len(issues))
	}
}

func TestDetect_Deterministic(t *testing.T) {
	d := New()
	doc := "We leverage a robust, seamless, world-class paradigm, which might possibly help."

	p1, i1 := d.Detect(doc)
	p2, i2 := d.Detect(doc)
	if p1 != p2 || len(i1) != len(i2) {
		t.Error("detection is not deterministic")
	}
}
