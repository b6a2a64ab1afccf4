// Package slop detects low-information language in business documents:
// buzzwords, hedging, and filler phrases that pad a document without adding
// facts. The validator consumes the raw penalty through an interface and
// converts it into a bounded score deduction.
package slop

import (
	"fmt"
	"regexp"
)

var (
	reBuzzword = regexp.MustCompile(`(?i)\b(synerg\w+|leverage[sd]?|paradigm|world[- ]class|best[- ]in[- ]class|cutting[- ]edge|state[- ]of[- ]the[- ]art|next[- ]generation|game[- ]chang\w+|revolutioniz\w+|disrupt\w+|holistic|seamless(ly)?|robust(ly)?|empower\w*|transformative|innovative)\b`)

	reHedge = regexp.MustCompile(`(?i)\b(might|could|possibly|perhaps|somewhat|fairly|arguably|potentially|may well|it is believed|we think|we feel|hopefully)\b`)

	reFiller = regexp.MustCompile(`(?i)(at the end of the day|needless to say|it goes without saying|in order to|the fact of the matter|when all is said and done|for all intents and purposes|last but not least)`)
)

// Hedging is normal in moderation; only occurrences beyond this many
// contribute to the penalty.
const hedgeAllowance = 2

// Detector is the stateless low-information-language detector.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// Detect counts buzzwords, excess hedging, and filler phrases and returns
// a raw penalty magnitude (one point per flagged occurrence) plus issue
// strings describing what was flagged. The penalty is unbounded here; the
// caller is responsible for capping the deduction it derives from it.
func (d *Detector) Detect(doc string) (int, []string) {
	penalty := 0
	issues := []string{}

	if n := len(reBuzzword.FindAllString(doc, -1)); n > 0 {
		penalty += n
		issues = append(issues,
			fmt.Sprintf("%d buzzword(s); replace them with specifics", n))
	}

	if n := len(reHedge.FindAllString(doc, -1)); n > hedgeAllowance {
		penalty += n - hedgeAllowance
		issues = append(issues,
			fmt.Sprintf("Heavy hedging (%d instances); commit to the numbers or cut the claim", n))
	}

	if n := len(reFiller.FindAllString(doc, -1)); n > 0 {
		penalty += n
		issues = append(issues,
			fmt.Sprintf("%d filler phrase(s); every sentence should earn its place", n))
	}

	return penalty, issues
}
