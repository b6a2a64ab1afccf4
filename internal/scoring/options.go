package scoring

import "fmt"

// optionsSignals holds the detection results for Options & Alternatives.
type optionsSignals struct {
	heading      bool
	doNothing    int
	alternatives int
	labeled      bool
	recommends   bool
	compares     bool
}

func detectOptions(doc string) optionsSignals {
	return optionsSignals{
		heading:      reOptionsHeading.MatchString(doc),
		doNothing:    len(reDoNothing.FindAllString(doc, -1)),
		alternatives: countDistinct(reAlternative, doc),
		// Either a labeled minimal-investment or full-investment option
		// satisfies the multi-option labeling requirement.
		labeled:    reMinimalOption.MatchString(doc) || reFullOption.MatchString(doc),
		recommends: reRecommendation.MatchString(doc),
		compares:   reComparison.MatchString(doc),
	}
}

// scoreOptions evaluates the Options & Alternatives dimension (max 25):
// a quantified do-nothing scenario, a real spread of alternatives, and a
// justified recommendation.
func scoreOptions(doc string) DimensionResult {
	sig := detectOptions(doc)
	res := newDimensionResult(MaxOptions)

	// Do-nothing scenario.
	switch {
	case sig.doNothing >= 2:
		res.Score += ptsDoNothingStrong
		res.Strengths = append(res.Strengths,
			"Treats doing nothing as a real option with consequences")
	case sig.doNothing == 1:
		res.Score += ptsDoNothingWeak
		res.Issues = append(res.Issues,
			"Do-nothing scenario mentioned once; quantify its cost and risk")
	default:
		res.Issues = append(res.Issues,
			"No do-nothing scenario; executives always ask what happens if we wait")
	}

	// Alternative enumeration.
	switch {
	case sig.alternatives >= 3 && sig.labeled:
		res.Score += ptsAlternativesBest
		res.Strengths = append(res.Strengths,
			fmt.Sprintf("Presents %d alternatives including a labeled investment tier", sig.alternatives))
	case sig.alternatives >= 2:
		res.Score += ptsAlternativesPartial
		res.Issues = append(res.Issues,
			"Some alternatives listed; add a minimal-investment and full-investment option")
	case sig.alternatives == 1:
		res.Score += ptsAlternativesWeak
		res.Issues = append(res.Issues,
			"Only one alternative considered; a single option is a decision, not a case")
	default:
		res.Issues = append(res.Issues,
			"No alternatives presented")
	}

	// Recommendation with comparison.
	switch {
	case sig.recommends && sig.compares:
		res.Score += ptsRecommendCompared
		res.Strengths = append(res.Strengths,
			"Makes a clear recommendation backed by comparison language")
	case sig.recommends:
		res.Score += ptsRecommendOnly
		res.Issues = append(res.Issues,
			"Recommendation stated without comparing it to the alternatives")
	default:
		res.Issues = append(res.Issues,
			"No explicit recommendation; say which option you propose and why")
	}

	if !sig.heading && sig.alternatives > 0 {
		res.Issues = append(res.Issues,
			"Alternatives scattered through the text; collect them under an options section")
	}

	clampDimension(&res)
	return res
}
