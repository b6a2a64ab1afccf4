// Package templates renders the markdown artifacts of the business case
// workflow: the copy-paste prompts handed to the user's external LLM and
// the final assembled document.
package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template identifies a renderable artifact.
type Template string

const (
	// IntakeGuide tells the user what to write down before any LLM is involved.
	IntakeGuide Template = "intake_guide"
	// DraftPrompt is pasted into an external LLM to produce the first draft.
	DraftPrompt Template = "draft_prompt"
	// RevisePrompt is pasted into an external LLM to fix validation issues.
	RevisePrompt Template = "revise_prompt"
	// FinalDocument is the export-ready business case.
	FinalDocument Template = "final_document"
)

// IntakeGuideData fills the intake guide.
type IntakeGuideData struct {
	Name     string
	Audience string
}

// DraftPromptData fills the drafting prompt.
type DraftPromptData struct {
	Name     string
	Audience string
	Intake   string
}

// RevisePromptData fills the revision prompt.
type RevisePromptData struct {
	Name      string
	Draft     string
	Score     int
	Threshold int
	Issues    []string
}

// FinalDocumentData fills the exported document.
type FinalDocumentData struct {
	Name        string
	Audience    string
	Content     string
	Score       int
	GeneratedAt string
}

// Renderer renders workflow templates.
type Renderer interface {
	Render(tpl Template, data any) (string, error)
}

type renderer struct {
	templates *template.Template
}

// NewRenderer parses all workflow templates.
func NewRenderer() (Renderer, error) {
	root := template.New("bja")
	for name, text := range sources {
		if _, err := root.New(string(name)).Parse(text); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
	}
	return &renderer{templates: root}, nil
}

// Render executes a template with the given data.
func (r *renderer) Render(tpl Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(tpl), data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tpl, err)
	}
	return buf.String(), nil
}

var sources = map[Template]string{
	IntakeGuide: `# {{.Name}} — Intake

Write the raw material for your case in your own words. No polish needed;
the external model does the drafting, the validator keeps it honest.

Cover, as concretely as you can:

- **The problem**: what hurts today, with numbers (time, money, people)
- **The ask**: what you want approved, and roughly what it costs
- **The payoff**: what changes if it works, against today's baseline
- **Sources**: any study, benchmark, or internal data backing your numbers
- **Constraints**: budget ceilings, deadlines, who has to sign off

Your audience is **{{.Audience}}**. Save this with case_draft when ready.`,

	DraftPrompt: `You are an experienced operator writing a business justification titled "{{.Name}}" for {{.Audience}}.

Using ONLY the facts below, write a complete business case in markdown with these sections:

1. **Executive Summary** — the ask, the payoff, and the recommendation in four sentences
2. **Problem** — quantified with the numbers provided; cite the sources by name
3. **Financial Analysis** — show the ROI arithmetic as (gain - cost) / cost, state a payback period in months, and a three-year total cost of ownership including implementation, training, and operational costs
4. **Options** — at least three: Do Nothing (quantify the cost of the status quo), a Minimal Investment option, and a Full Solution; then recommend one and compare it against the others
5. **Risks and Mitigations** — each risk paired with a mitigation or fallback
6. **Stakeholders** — who approves, who pays, who runs it; name the functions (Finance, HR, Legal) whose concerns you address

Do not invent numbers that are not in the facts. Where a number is missing, write [NEEDED: description] instead of guessing. No buzzwords, no hedging.

FACTS:

{{.Intake}}`,

	RevisePrompt: `You are revising the business case "{{.Name}}" below. A deterministic review scored it {{.Score}}/100; it needs at least {{.Threshold}} to pass.

Fix exactly these issues, changing as little else as possible:

{{range .Issues}}- {{.}}
{{end}}
Keep every fact and number that is already there. Do not add new claims without marking them [NEEDED: source]. Return the full revised document in markdown.

DOCUMENT:

{{.Draft}}`,

	FinalDocument: `<!-- {{.Name}} | audience: {{.Audience}} | readiness score: {{.Score}}/100 | generated {{.GeneratedAt}} -->

{{.Content}}`,
}
