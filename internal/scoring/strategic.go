package scoring

import "fmt"

// strategicSignals holds the detection results for Strategic Evidence.
type strategicSignals struct {
	problemHeading bool
	quantified     int
	sources        int
	businessFocus  bool
	beforeAfter    bool
}

func detectStrategic(doc string) strategicSignals {
	return strategicSignals{
		problemHeading: reProblemHeading.MatchString(doc),
		quantified:     len(reQuantified.FindAllString(doc, -1)),
		sources:        countDistinct(reSource, doc),
		businessFocus:  reBusinessFocus.MatchString(doc),
		beforeAfter:    reBaseline.MatchString(doc) && reTarget.MatchString(doc),
	}
}

// scoreStrategic evaluates the Strategic Evidence dimension (max 30):
// a quantified problem statement, named external sources, and business
// outcome framing with before/after comparison.
func scoreStrategic(doc string) DimensionResult {
	sig := detectStrategic(doc)
	res := newDimensionResult(MaxStrategic)

	// Quantified problem statement.
	switch {
	case sig.problemHeading && sig.quantified >= 3:
		res.Score += ptsQuantifiedBest
		res.Strengths = append(res.Strengths,
			fmt.Sprintf("Problem section backed by %d quantified data points", sig.quantified))
	case sig.problemHeading && sig.quantified >= 1:
		res.Score += ptsQuantifiedPartial
		res.Issues = append(res.Issues,
			"Problem section has some quantification; add more hard numbers (%, $, time)")
	case sig.quantified >= 1:
		res.Score += ptsQuantifiedWeak
		res.Issues = append(res.Issues,
			"Quantified data found but no dedicated problem/context section")
	default:
		res.Issues = append(res.Issues,
			"No quantified problem statement; executives expect numbers, not narrative")
	}

	// Named external sources.
	switch {
	case sig.sources >= 2:
		res.Score += ptsSourcesBest
		res.Strengths = append(res.Strengths,
			fmt.Sprintf("Claims supported by %d distinct sources", sig.sources))
	case sig.sources == 1:
		res.Score += ptsSourcesPartial
		res.Issues = append(res.Issues,
			"Only one source cited; corroborate key claims with a second source")
	default:
		res.Issues = append(res.Issues,
			"No named sources; cite analyst data, studies, or internal benchmarks")
	}

	// Business outcome focus with before/after framing.
	switch {
	case sig.businessFocus && sig.beforeAfter:
		res.Score += ptsBusinessBoth
		res.Strengths = append(res.Strengths,
			"Frames the problem in business outcomes with a baseline-to-target comparison")
	case sig.businessFocus:
		res.Score += ptsBusinessOnly
		res.Issues = append(res.Issues,
			"Business outcomes mentioned but no baseline vs. target comparison")
	default:
		res.Issues = append(res.Issues,
			"No business outcome framing (revenue, cost, retention, productivity)")
	}

	clampDimension(&res)
	return res
}
