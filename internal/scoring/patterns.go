package scoring

import (
	"regexp"
	"strings"
)

// Pattern tables for the four rubric dimensions. All patterns are compiled
// once at package init and shared read-only across calls. Heading patterns
// are anchored to line starts in multiline mode; lexical patterns scan the
// whole document.

// --- Strategic Evidence ---

var (
	reProblemHeading = regexp.MustCompile(`(?im)^#{1,6}\s*.*\b(problem|challenge|context|background|current state|pain point)`)

	// Quantification cues: a number followed by a percent sign, a currency
	// amount, or a time/capacity unit.
	reQuantified = regexp.MustCompile(`(?i)(\d[\d,]*(\.\d+)?\s*(%|percent|bps|hours?|hrs|days?|weeks?|months?|years?|fte)|[$€£]\s?\d[\d,]*(\.\d+)?\s?[kmb]?)`)

	reSource = regexp.MustCompile(`(?i)\b(gartner|forrester|idc|mckinsey|deloitte|accenture|according to|study|survey|benchmark|analyst|research)\b`)

	reBusinessFocus = regexp.MustCompile(`(?i)\b(revenue|profit|margin|market share|churn|retention|customer satisfaction|competitive|cost sav\w*|efficiency|productivity|time[- ]to[- ]market)\b`)

	reBaseline = regexp.MustCompile(`(?i)\b(baseline|current(ly)?|today|as[- ]is|before)\b`)
	reTarget   = regexp.MustCompile(`(?i)\b(target|goal|to[- ]be|after|improv\w+|future state|expected)\b`)
)

// --- Financial Justification ---

var (
	reFinancialHeading = regexp.MustCompile(`(?im)^#{1,6}\s*.*\b(financial|roi|budget|cost|investment|economics)`)

	// Explicit ROI calculation shapes: a (gain - cost) / cost arithmetic
	// pattern, a stated "ROI = N%" assertion, or a ratio of two amounts.
	reROIFormula = regexp.MustCompile(`\(\s*[$€£]?\s?[\d,.]+\s?[kmb]?\s*[-−–]\s*[$€£]?\s?[\d,.]+\s?[kmb]?\s*\)\s*/\s*[$€£]?\s?[\d,.]+`)
	reROIStated  = regexp.MustCompile(`(?i)\broi\b\s*(=|:|of|is)\s*~?\s*[\d,.]+\s*%`)
	reAmountRatio = regexp.MustCompile(`[$€£]\s?[\d,.]+\s?[kmb]?\s*/\s*[$€£]\s?[\d,.]+`)

	reROIMention = regexp.MustCompile(`(?i)\b(roi|return on investment)\b`)

	rePayback  = regexp.MustCompile(`(?i)\b(payback|break[- ]?even)\b`)
	reDuration = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(months?|weeks?|years?|quarters?)\b`)

	reTCO = regexp.MustCompile(`(?i)\b(tco|total cost of ownership|hidden costs?|implementation costs?|training costs?|operational costs?|opportunity costs?|maintenance costs?|3[- ]year|three[- ]year)\b`)

	reCurrencyAmount = regexp.MustCompile(`[$€£]\s?\d`)
)

// --- Options & Alternatives ---

var (
	reOptionsHeading = regexp.MustCompile(`(?im)^#{1,6}\s*.*\b(options?|alternatives?|scenarios?|approaches)`)

	reDoNothing = regexp.MustCompile(`(?i)(do[- ]noth\w*|status[- ]quo|no[- ]action|inaction|if we don'?t|do not act|\boption a\b)`)

	reAlternative = regexp.MustCompile(`(?i)\b(alternatives?|options?|approach(es)?|build vs\.?\s?buy|option [b-d]\b|scenario)\b`)

	reMinimalOption = regexp.MustCompile(`(?i)\b(minimal|minimum|low)[- ]?(investment|option|approach|scope|cost option)\b`)
	reFullOption    = regexp.MustCompile(`(?i)\b(full|complete|comprehensive)[- ]?(investment|solution|implementation|scope)\b`)

	reRecommendation = regexp.MustCompile(`(?i)\b(recommend\w*|proposed|chosen|preferred)\b`)
	reComparison     = regexp.MustCompile(`(?i)\b(versus|vs\.?|trade[- ]?offs?|pros and cons|compared (to|with)|comparison)\b`)
)

// --- Execution Completeness ---

var (
	reSummaryHeading = regexp.MustCompile(`(?im)^#{1,6}\s*(executive summary|tl;?dr|summary)\b`)

	reRiskHeading = regexp.MustCompile(`(?im)^#{1,6}\s*.*\b(risks?|mitigations?)`)
	reRiskCue     = regexp.MustCompile(`(?i)\b(risks?|mitigat\w+|contingenc\w+|fallback|worst[- ]case)\b`)

	reStakeholderHeading = regexp.MustCompile(`(?im)^#{1,6}\s*.*\b(stakeholders?|raci|owners?|sign[- ]?off)`)

	// Extended stakeholder lexicon: functions and named executive roles
	// whose concerns an executive-ready case is expected to address.
	reStakeholderCue = regexp.MustCompile(`(?i)\b(finance|fp&a|hr|people ops|human resources|legal|compliance|procurement|security|cfo|cto|ceo|coo|cio|vp|vice president|director)\b`)
)

// countDistinct returns how many distinct (case-folded) strings the pattern
// matches in doc. Used where the rubric requires distinct mentions rather
// than raw occurrence counts.
func countDistinct(re *regexp.Regexp, doc string) int {
	seen := map[string]struct{}{}
	for _, m := range re.FindAllString(doc, -1) {
		seen[strings.ToLower(m)] = struct{}{}
	}
	return len(seen)
}
