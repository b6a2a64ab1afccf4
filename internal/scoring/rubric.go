// Package scoring implements the deterministic business-case validator.
//
// It runs a fixed library of regex heuristics against a free-text document
// and awards points across four weighted rubric dimensions (Strategic
// Evidence, Financial Justification, Options & Alternatives, Execution
// Completeness), producing a 0-100 readiness score with per-dimension
// feedback. It is a best-effort proxy for an LLM-based evaluator, not a
// semantic parser: the regex tiers ARE the contract.
package scoring

// Dimension maxima. These sum to exactly 100.
const (
	MaxStrategic = 30
	MaxFinancial = 25
	MaxOptions   = 25
	MaxExecution = 20
)

// Per-criterion tier points. The same constants feed both the dimension
// scorers and the LLM grading prompt (ScoringPrompt), so the deterministic
// validator and the external-model rubric cannot drift apart.
const (
	ptsQuantifiedBest    = 12 // problem section + 3 or more quantified data points
	ptsQuantifiedPartial = 8  // problem section + some quantification
	ptsQuantifiedWeak    = 4  // quantified data without a dedicated section

	ptsSourcesBest    = 10 // 2 or more distinct named sources
	ptsSourcesPartial = 5  // a single source mention

	ptsBusinessBoth = 8 // business outcome focus + before/after framing
	ptsBusinessOnly = 4 // business outcome focus alone

	ptsROIFormula = 10 // explicit (gain - cost) / cost calculation
	ptsROIMention = 5  // ROI mentioned without the arithmetic

	ptsPaybackFull    = 8 // payback/break-even with an explicit duration
	ptsPaybackMention = 4 // payback mentioned without a duration

	ptsTCOFull = 7 // TCO cues backed by currency amounts
	ptsTCOCues = 4 // TCO cues alone

	ptsDoNothingStrong = 10 // do-nothing scenario discussed in 2+ places
	ptsDoNothingWeak   = 6  // a single do-nothing mention

	ptsAlternativesBest    = 10 // 3+ distinct alternatives incl. a labeled minimal or full option
	ptsAlternativesPartial = 6  // 2 distinct alternatives
	ptsAlternativesWeak    = 3  // a single alternative

	ptsRecommendCompared = 5 // recommendation with comparison language
	ptsRecommendOnly     = 3 // recommendation without comparison

	ptsExecSummary = 6 // executive summary section present

	ptsRisksFull    = 7 // risks section + 3 or more risk/mitigation mentions
	ptsRisksSection = 4 // risks section alone

	ptsStakeholdersFull    = 7 // stakeholders section + functional concerns named
	ptsStakeholdersSection = 4 // stakeholders section alone
)

// Slop deduction parameters: the aggregator scales the detector's raw
// penalty by slopScale, floors the result, and caps it at slopCap.
const (
	slopCap   = 5
	slopScale = 0.6
)

// noContentIssue is the sentinel issue reported by every dimension when the
// input document is empty.
const noContentIssue = "No content to evaluate"

// DimensionResult holds one rubric dimension's score and feedback.
type DimensionResult struct {
	Score     int      `json:"score"`
	MaxScore  int      `json:"max_score"`
	Issues    []string `json:"issues"`
	Strengths []string `json:"strengths"`
}

// SlopReport holds the low-information-language penalty applied to the
// total. Penalty is the detector's raw magnitude; Deduction is the capped,
// scaled value actually subtracted.
type SlopReport struct {
	Penalty   int      `json:"penalty"`
	Deduction int      `json:"deduction"`
	Issues    []string `json:"issues"`
}

// Report is the full validation output for one document.
type Report struct {
	TotalScore int             `json:"total_score"`
	Strategic  DimensionResult `json:"strategic_evidence"`
	Financial  DimensionResult `json:"financial_justification"`
	Options    DimensionResult `json:"options_alternatives"`
	Execution  DimensionResult `json:"execution_completeness"`
	Slop       SlopReport      `json:"slop_detection"`
}

// newDimensionResult returns an empty result for a dimension. Issues and
// strengths are non-nil so callers and JSON consumers never see null.
func newDimensionResult(max int) DimensionResult {
	return DimensionResult{
		MaxScore:  max,
		Issues:    []string{},
		Strengths: []string{},
	}
}

// clampDimension enforces 0 <= score <= max. The tier design makes the
// upper bound unreachable, but the invariant is guaranteed here regardless.
func clampDimension(r *DimensionResult) {
	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > r.MaxScore {
		r.Score = r.MaxScore
	}
}
