package scoring

// executionSignals holds the detection results for Execution Completeness.
type executionSignals struct {
	summaryHeading     bool
	riskHeading        bool
	riskCues           int
	stakeholderHeading bool
	stakeholderCues    bool
}

func detectExecution(doc string) executionSignals {
	return executionSignals{
		summaryHeading:     reSummaryHeading.MatchString(doc),
		riskHeading:        reRiskHeading.MatchString(doc),
		riskCues:           len(reRiskCue.FindAllString(doc, -1)),
		stakeholderHeading: reStakeholderHeading.MatchString(doc),
		stakeholderCues:    reStakeholderCue.MatchString(doc),
	}
}

// scoreExecution evaluates the Execution Completeness dimension (max 20):
// an executive summary, a risks-and-mitigations section, and stakeholder
// coverage.
func scoreExecution(doc string) DimensionResult {
	sig := detectExecution(doc)
	res := newDimensionResult(MaxExecution)

	// Executive summary.
	if sig.summaryHeading {
		res.Score += ptsExecSummary
		res.Strengths = append(res.Strengths,
			"Opens with an executive summary")
	} else {
		res.Issues = append(res.Issues,
			"No executive summary; busy readers decide in the first paragraph")
	}

	// Risks and mitigations.
	switch {
	case sig.riskHeading && sig.riskCues >= 3:
		res.Score += ptsRisksFull
		res.Strengths = append(res.Strengths,
			"Risks section with concrete mitigations")
	case sig.riskHeading:
		res.Score += ptsRisksSection
		res.Issues = append(res.Issues,
			"Risks section is thin; pair each risk with a mitigation or fallback")
	default:
		res.Issues = append(res.Issues,
			"No risks section; an unmitigated case reads as naive")
	}

	// Stakeholders.
	switch {
	case sig.stakeholderHeading && sig.stakeholderCues:
		res.Score += ptsStakeholdersFull
		res.Strengths = append(res.Strengths,
			"Names stakeholders and the functions whose concerns are covered")
	case sig.stakeholderHeading:
		res.Score += ptsStakeholdersSection
		res.Issues = append(res.Issues,
			"Stakeholders section present but no functional concerns (Finance, HR, Legal) addressed")
	default:
		res.Issues = append(res.Issues,
			"No stakeholders section; name who approves, who pays, and who runs it")
	}

	clampDimension(&res)
	return res
}
