package scoring

import "fmt"

// ScoringPrompt renders the validation rubric as natural-language grading
// instructions for an external LLM. The point allocations come from the
// same constants the deterministic scorers use, so the two evaluators stay
// numerically identical. The deterministic validator and the model will
// still diverge on edge cases; that divergence is accepted.
func ScoringPrompt(doc string) string {
	return fmt.Sprintf(`You are a skeptical CFO reviewing a business justification document for executive readiness.

Score the document 0-100 across four dimensions. Award points per criterion using the tiers below; a criterion that meets no tier scores 0.

STRATEGIC EVIDENCE (%d points)
- Quantified problem: dedicated problem/context section with 3+ quantified data points (%%, $, time) = %d pts; section with some quantification = %d pts; quantified data but no dedicated section = %d pts
- Sources: 2+ distinct named sources (analyst firms, studies, benchmarks) = %d pts; one source = %d pts
- Business framing: business outcomes (revenue, cost, retention) with a baseline-to-target comparison = %d pts; business outcomes alone = %d pts

FINANCIAL JUSTIFICATION (%d points)
- ROI: explicit calculation shaped like (gain - cost) / cost, a stated "ROI = N%%", or a ratio of two amounts = %d pts; ROI mentioned without arithmetic = %d pts
- Payback: payback or break-even period with an explicit duration (N months/weeks/years) = %d pts; mentioned without a duration = %d pts
- TCO: total-cost-of-ownership categories (hidden, implementation, training, operational, opportunity costs; 3-year view) with dollar amounts = %d pts; categories without amounts = %d pts

OPTIONS & ALTERNATIVES (%d points)
- Do-nothing scenario: discussed and quantified in 2+ places = %d pts; a single mention = %d pts
- Alternatives: 3+ distinct options including a labeled minimal-investment or full-investment option = %d pts; 2 options = %d pts; 1 option = %d pts
- Recommendation: clear recommendation with comparison language (versus, trade-offs, pros/cons) = %d pts; recommendation alone = %d pts

EXECUTION COMPLETENESS (%d points)
- Executive summary section = %d pts
- Risks: dedicated section with 3+ risk/mitigation mentions = %d pts; section alone = %d pts
- Stakeholders: dedicated section naming functional concerns (Finance/FP&A, HR, Legal/Compliance, named executive roles) = %d pts; section alone = %d pts

Subtract up to %d points for low-information language: buzzwords, hedging, and filler that pad the document without adding facts.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "total_score": 0,
  "strategic_evidence": {"score": 0, "max_score": %d, "issues": [], "strengths": []},
  "financial_justification": {"score": 0, "max_score": %d, "issues": [], "strengths": []},
  "options_alternatives": {"score": 0, "max_score": %d, "issues": [], "strengths": []},
  "execution_completeness": {"score": 0, "max_score": %d, "issues": [], "strengths": []},
  "slop_deduction": 0
}

DOCUMENT TO SCORE:
%s`,
		MaxStrategic,
		ptsQuantifiedBest, ptsQuantifiedPartial, ptsQuantifiedWeak,
		ptsSourcesBest, ptsSourcesPartial,
		ptsBusinessBoth, ptsBusinessOnly,
		MaxFinancial,
		ptsROIFormula, ptsROIMention,
		ptsPaybackFull, ptsPaybackMention,
		ptsTCOFull, ptsTCOCues,
		MaxOptions,
		ptsDoNothingStrong, ptsDoNothingWeak,
		ptsAlternativesBest, ptsAlternativesPartial, ptsAlternativesWeak,
		ptsRecommendCompared, ptsRecommendOnly,
		MaxExecution,
		ptsExecSummary,
		ptsRisksFull, ptsRisksSection,
		ptsStakeholdersFull, ptsStakeholdersSection,
		slopCap,
		MaxStrategic, MaxFinancial, MaxOptions, MaxExecution,
		doc)
}
