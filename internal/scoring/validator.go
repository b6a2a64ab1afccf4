package scoring

import (
	"math"
	"strings"
)

// SlopDetector flags low-information language in a document and returns a
// raw penalty magnitude with explanatory issues. The validator consumes
// only this interface; the concrete detector is injected at construction.
type SlopDetector interface {
	Detect(doc string) (penalty int, issues []string)
}

// Validator runs the four dimension scorers and the slop penalty over a
// document and aggregates the result. It holds no per-call state and is
// safe for concurrent use.
type Validator struct {
	slop SlopDetector
}

// New creates a Validator with the given slop detector. A nil detector is
// allowed and disables the slop deduction.
func New(slop SlopDetector) *Validator {
	return &Validator{slop: slop}
}

// Validate scores a document for executive readiness. It is a pure function
// of its input: the same document always yields the same report. Empty or
// whitespace-only input returns the degenerate all-zero report without
// running any pattern matching.
func (v *Validator) Validate(doc string) Report {
	if strings.TrimSpace(doc) == "" {
		return emptyReport()
	}

	report := Report{
		Strategic: scoreStrategic(doc),
		Financial: scoreFinancial(doc),
		Options:   scoreOptions(doc),
		Execution: scoreExecution(doc),
		Slop:      v.detectSlop(doc),
	}

	total := report.Strategic.Score +
		report.Financial.Score +
		report.Options.Score +
		report.Execution.Score -
		report.Slop.Deduction

	// The dimension maxima sum to 100, so only the lower clamp can bind.
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	report.TotalScore = total

	return report
}

// detectSlop converts the detector's raw penalty into the bounded deduction
// actually applied to the total.
func (v *Validator) detectSlop(doc string) SlopReport {
	rep := SlopReport{Issues: []string{}}
	if v.slop == nil {
		return rep
	}

	penalty, issues := v.slop.Detect(doc)
	if penalty < 0 {
		penalty = 0
	}
	rep.Penalty = penalty
	if issues != nil {
		rep.Issues = issues
	}

	deduction := int(math.Floor(float64(penalty) * slopScale))
	if deduction > slopCap {
		deduction = slopCap
	}
	rep.Deduction = deduction

	return rep
}

// emptyReport is the defined degenerate output for empty input: zero scores
// everywhere and the no-content sentinel issue in every dimension.
func emptyReport() Report {
	dim := func(max int) DimensionResult {
		r := newDimensionResult(max)
		r.Issues = append(r.Issues, noContentIssue)
		return r
	}
	return Report{
		TotalScore: 0,
		Strategic:  dim(MaxStrategic),
		Financial:  dim(MaxFinancial),
		Options:    dim(MaxOptions),
		Execution:  dim(MaxExecution),
		Slop:       SlopReport{Issues: []string{}},
	}
}
