// Package pipeline implements the phase state machine for the business
// case workflow.
//
// The workflow is linear (init, intake, draft, review, final) with one
// gate: a case cannot leave the review phase until its deterministic
// validation score meets the threshold for the active mode.
package pipeline

import (
	"fmt"

	"github.com/bordenet/business-justification-assistant/internal/config"
)

// ScoreThreshold returns the review gate threshold for a mode.
func ScoreThreshold(mode config.Mode) int {
	if mode == config.ModeExecutive {
		return 75
	}
	return 60
}

// PhaseIndex returns the ordinal position of a phase, or -1 if unknown.
func PhaseIndex(phase config.Phase) int {
	for i, p := range config.PhaseOrder {
		if p == phase {
			return i
		}
	}
	return -1
}

// RequirePhase returns an error unless the case is currently at the given
// phase, with guidance on where the workflow actually stands.
func RequirePhase(cfg *config.CaseConfig, phase config.Phase) error {
	if cfg.CurrentPhase == phase {
		return nil
	}

	current := PhaseIndex(cfg.CurrentPhase)
	want := PhaseIndex(phase)
	if want < 0 {
		return fmt.Errorf("unknown phase %q", phase)
	}
	if current < want {
		return fmt.Errorf("case %q is still at the %s phase; complete it before %s",
			cfg.Name, cfg.CurrentPhase, phase)
	}
	return fmt.Errorf("case %q already moved past %s (currently at %s)",
		cfg.Name, phase, cfg.CurrentPhase)
}

// MarkInProgress records activity on the current phase: sets it
// in_progress, bumps its iteration count, and stamps the start time once.
func MarkInProgress(cfg *config.CaseConfig) {
	st := cfg.PhaseStatus[cfg.CurrentPhase]
	st.Status = "in_progress"
	st.Iterations++
	if st.StartedAt == "" {
		st.StartedAt = nowUTC()
	}
	cfg.PhaseStatus[cfg.CurrentPhase] = st
}

// CanAdvance checks whether the case may move past its current phase.
// Leaving review requires the last validation score to meet the mode's
// threshold.
func CanAdvance(cfg *config.CaseConfig) error {
	idx := PhaseIndex(cfg.CurrentPhase)
	if idx < 0 {
		return fmt.Errorf("unknown current phase %q", cfg.CurrentPhase)
	}
	if idx >= len(config.PhaseOrder)-1 {
		return fmt.Errorf("case %q is already at the final phase", cfg.Name)
	}

	if cfg.CurrentPhase == config.PhaseReview {
		threshold := ScoreThreshold(cfg.Mode)
		if cfg.LastScore < threshold {
			return fmt.Errorf(
				"validation score %d is below the %s-mode threshold of %d: revise the draft and rerun case_score",
				cfg.LastScore, cfg.Mode, threshold)
		}
	}

	return nil
}

// Advance moves the case to the next phase: marks the current phase
// completed and the next one in_progress.
func Advance(cfg *config.CaseConfig) error {
	if err := CanAdvance(cfg); err != nil {
		return err
	}

	now := nowUTC()
	idx := PhaseIndex(cfg.CurrentPhase)

	st := cfg.PhaseStatus[cfg.CurrentPhase]
	st.Status = "completed"
	st.CompletedAt = now
	cfg.PhaseStatus[cfg.CurrentPhase] = st

	next := config.PhaseOrder[idx+1]
	nst := cfg.PhaseStatus[next]
	nst.Status = "in_progress"
	if nst.StartedAt == "" {
		nst.StartedAt = now
	}
	cfg.PhaseStatus[next] = nst

	cfg.CurrentPhase = next
	cfg.UpdatedAt = now
	return nil
}

// Complete marks the final phase done. Called after the export artifact
// has been written.
func Complete(cfg *config.CaseConfig) error {
	if cfg.CurrentPhase != config.PhaseFinal {
		return fmt.Errorf("case %q is not at the final phase (currently %s)",
			cfg.Name, cfg.CurrentPhase)
	}

	now := nowUTC()
	st := cfg.PhaseStatus[config.PhaseFinal]
	st.Status = "completed"
	st.CompletedAt = now
	cfg.PhaseStatus[config.PhaseFinal] = st
	cfg.UpdatedAt = now
	return nil
}
