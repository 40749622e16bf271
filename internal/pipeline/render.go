package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/clauseguard/clauseguard/internal/finance"
	"github.com/clauseguard/clauseguard/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, and a terminal
// summary.
type Renderer struct {
	includeFooter bool
}

func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Contract Analysis: %s\n\n", report.ContractType)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	if report.Language.IsHindi {
		b.WriteString("Language: Hindi (dictionary-based normalization applied)\n\n")
	}

	fmt.Fprintf(&b, "## Verdict: %s\n\n", report.Decision.Verdict)
	fmt.Fprintf(&b, "- Decision score: %d/100 (lower is safer)\n", report.Decision.DecisionScore)
	fmt.Fprintf(&b, "- Confidence: %s\n", report.Decision.Confidence)
	fmt.Fprintf(&b, "- Overall risk: %s\n", report.OverallRisk)
	fmt.Fprintf(&b, "- Clauses: %d total, %d high risk, %d medium risk\n\n",
		len(report.Clauses), report.HighRiskCount(), report.MediumRiskCount())
	fmt.Fprintf(&b, "%s\n\n", report.Decision.Reasoning)

	if len(report.Decision.RedFlags) > 0 {
		b.WriteString("## Red Flags\n\n")
		for _, f := range report.Decision.RedFlags {
			fmt.Fprintf(&b, "- **Clause %d** (%s): %s\n", f.ClauseID, f.ClauseType, f.Explanation)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Financial Exposure\n\n")
	fmt.Fprintf(&b, "- Estimated penalty exposure: ₹%s\n", finance.FormatAmount(report.Financial.PenaltyAmount))
	if report.Financial.DisruptionDays > 0 {
		fmt.Fprintf(&b, "- Potential business disruption: %d days\n", report.Financial.DisruptionDays)
	}
	for _, factor := range report.Financial.RiskFactors {
		fmt.Fprintf(&b, "- %s\n", factor)
	}
	b.WriteString("\n")

	if len(report.Decision.MustNegotiate) > 0 {
		b.WriteString("## Must Negotiate\n\n")
		for _, m := range report.Decision.MustNegotiate {
			fmt.Fprintf(&b, "### Clause %d: %s\n\n", m.ClauseID, m.Title)
			fmt.Fprintf(&b, "- Problem: %s\n", m.Problem)
			fmt.Fprintf(&b, "- Request: %s\n", m.Request)
			fmt.Fprintf(&b, "- Fallback position: %s\n\n", m.Fallback)
		}
	}

	if len(report.Decision.NiceToNegotiate) > 0 {
		b.WriteString("## Worth Improving\n\n")
		for _, n := range report.Decision.NiceToNegotiate {
			fmt.Fprintf(&b, "- Clause %d (%s): %s\n", n.ClauseID, n.Title, n.Suggestion)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Clauses\n\n")
	b.WriteString("| # | Type | Risk | Triggers |\n|---|------|------|----------|\n")
	for _, c := range report.Clauses {
		keywords := make([]string, 0, len(c.Triggers))
		for _, t := range c.Triggers {
			keywords = append(keywords, t.Keyword)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", c.ID, c.Type, c.Risk, strings.Join(keywords, ", "))
	}
	b.WriteString("\n")

	if len(report.Comparisons) > 0 {
		b.WriteString("## Template Comparison\n\n")
		for _, cmp := range report.Comparisons {
			fmt.Fprintf(&b, "- Clause %d (%s): %d%% similar to the standard clause, verdict %s. %s\n",
				cmp.ClauseID, cmp.ClauseType, cmp.SimilarityScore, cmp.Verdict, cmp.Recommendation)
		}
		b.WriteString("\n")
	}

	if len(report.Enrichment) > 0 {
		b.WriteString("## Negotiation Guidance\n\n")
		if report.EnrichmentStatus.Fallback {
			b.WriteString("_AI guidance was unavailable; built-in guidance shown._\n\n")
		}
		for _, e := range report.Enrichment {
			fmt.Fprintf(&b, "### Clause %d\n\n", e.ClauseID)
			fmt.Fprintf(&b, "%s\n\n", e.PlainEnglish)
			for _, c := range e.BusinessConsequences {
				fmt.Fprintf(&b, "- %s\n", c)
			}
			if e.NegotiationScript != "" {
				fmt.Fprintf(&b, "\n> %s\n", e.NegotiationScript)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Action Plan\n\n")
	for _, step := range report.Decision.ActionPlan {
		marker := ""
		if step.Critical {
			marker = " (critical)"
		}
		fmt.Fprintf(&b, "%d. %s [%s]%s\n", step.Step, step.Action, step.Timeline, marker)
	}
	fmt.Fprintf(&b, "\nEstimated timeline: %s. %s\n", report.Decision.Timeline.Estimate, report.Decision.Timeline.Explanation)

	if r.includeFooter {
		b.WriteString("\n---\n\nThis is automated guidance, not legal advice. Consult a lawyer before signing.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short report to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\nContract type:  %s\n", report.ContractType)
	fmt.Printf("Overall risk:   %s\n", report.OverallRisk)
	fmt.Printf("Clauses:        %d (%d high, %d medium)\n",
		len(report.Clauses), report.HighRiskCount(), report.MediumRiskCount())
	fmt.Printf("Exposure:       ₹%s\n", finance.FormatAmount(report.Financial.PenaltyAmount))
	fmt.Printf("Verdict:        %s (score %d/100, confidence %s)\n",
		report.Decision.Verdict, report.Decision.DecisionScore, report.Decision.Confidence)
	fmt.Printf("Next step:      %s\n\n", firstAction(report))
}

func firstAction(report *model.Report) string {
	if len(report.Decision.ActionPlan) == 0 {
		return "Review the full report"
	}
	return report.Decision.ActionPlan[0].Action
}
