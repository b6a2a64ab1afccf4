package scoring

// financialSignals holds the detection results for Financial Justification.
type financialSignals struct {
	heading    bool
	roiFormula bool
	roiMention bool
	payback    bool
	duration   bool
	tcoCues    bool
	currency   bool
}

func detectFinancial(doc string) financialSignals {
	return financialSignals{
		heading: reFinancialHeading.MatchString(doc),
		roiFormula: reROIFormula.MatchString(doc) ||
			reROIStated.MatchString(doc) ||
			reAmountRatio.MatchString(doc),
		roiMention: reROIMention.MatchString(doc),
		payback:    rePayback.MatchString(doc),
		duration:   reDuration.MatchString(doc),
		tcoCues:    reTCO.MatchString(doc),
		currency:   reCurrencyAmount.MatchString(doc),
	}
}

// scoreFinancial evaluates the Financial Justification dimension (max 25):
// an explicit ROI calculation, a payback period, and total-cost-of-ownership
// coverage.
func scoreFinancial(doc string) DimensionResult {
	sig := detectFinancial(doc)
	res := newDimensionResult(MaxFinancial)

	// ROI calculation.
	switch {
	case sig.roiFormula:
		res.Score += ptsROIFormula
		res.Strengths = append(res.Strengths,
			"Shows the ROI arithmetic, not just the conclusion")
	case sig.roiMention:
		res.Score += ptsROIMention
		res.Issues = append(res.Issues,
			"ROI mentioned but not calculated; show (gain - cost) / cost")
	default:
		res.Issues = append(res.Issues,
			"No ROI analysis; quantify the return on the requested investment")
	}

	// Payback period.
	switch {
	case sig.payback && sig.duration:
		res.Score += ptsPaybackFull
		res.Strengths = append(res.Strengths,
			"States a payback period with an explicit timeframe")
	case sig.payback:
		res.Score += ptsPaybackMention
		res.Issues = append(res.Issues,
			"Payback mentioned without a timeframe; state the months to break even")
	default:
		res.Issues = append(res.Issues,
			"No payback or break-even analysis")
	}

	// Total cost of ownership.
	switch {
	case sig.tcoCues && sig.currency:
		res.Score += ptsTCOFull
		res.Strengths = append(res.Strengths,
			"Accounts for total cost of ownership with dollar figures")
	case sig.tcoCues:
		res.Score += ptsTCOCues
		res.Issues = append(res.Issues,
			"Cost categories named but not priced; attach amounts to hidden costs")
	default:
		res.Issues = append(res.Issues,
			"No TCO view; include implementation, training, and operational costs over 3 years")
	}

	if !sig.heading {
		res.Issues = append(res.Issues,
			"No dedicated financial section; group the numbers where a CFO will look for them")
	}

	clampDimension(&res)
	return res
}
