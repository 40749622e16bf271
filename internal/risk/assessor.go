// Package risk scores clauses against the keyword lexicon and reduces
// per-clause tiers into an overall contract tier. Matching is deliberate
// substring containment, not word-boundary matching: a keyword embedded in
// a longer token still counts, exactly as the downstream lexicon expects.
package risk

import (
	"strings"

	"github.com/clauseguard/clauseguard/internal/lexicon"
	"github.com/clauseguard/clauseguard/internal/model"
)

// contextWindow is how many characters around a keyword are captured
// with each trigger.
const contextWindow = 30

// Assessment is the risk result for one clause.
type Assessment struct {
	Risk     model.RiskTier
	Triggers []model.Trigger
}

// Assess scans a clause against the High-tier list first, then Medium,
// recording every keyword hit with surrounding context. Clause risk is the
// highest severity among triggers, defaulting to Low when there are none.
func Assess(clause string) Assessment {
	lower := strings.ToLower(clause)

	var triggers []model.Trigger
	for _, kw := range lexicon.HighRiskKeywords {
		if t, ok := trigger(clause, lower, kw, model.RiskHigh); ok {
			triggers = append(triggers, t)
		}
	}
	for _, kw := range lexicon.MediumRiskKeywords {
		if t, ok := trigger(clause, lower, kw, model.RiskMedium); ok {
			triggers = append(triggers, t)
		}
	}

	tier := model.RiskLow
	for _, t := range triggers {
		if t.Severity > tier {
			tier = t.Severity
		}
	}
	return Assessment{Risk: tier, Triggers: triggers}
}

func trigger(clause, lower, keyword string, severity model.RiskTier) (model.Trigger, bool) {
	idx := strings.Index(lower, keyword)
	if idx < 0 {
		return model.Trigger{}, false
	}

	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(keyword) + contextWindow
	if end > len(clause) {
		end = len(clause)
	}

	return model.Trigger{
		Keyword:     keyword,
		Context:     strings.TrimSpace(clause[start:end]),
		Severity:    severity,
		Explanation: lexicon.Explanation(severity, keyword),
	}, true
}

// Ambiguity returns the fixed ambiguous terms present in the clause.
func Ambiguity(clause string) []string {
	lower := strings.ToLower(clause)
	var found []string
	for _, term := range lexicon.AmbiguousTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

var (
	prohibitionCues = []string{"shall not", "will not", "prohibited"}
	obligationCues  = []string{"shall", "must", "agree to"}
	rightCues       = []string{"may", "entitled to"}
)

// Modality tags the clause's legal mood by first-match priority:
// Prohibition beats Obligation beats Right.
func Modality(clause string) model.Modality {
	lower := strings.ToLower(clause)
	for _, cue := range prohibitionCues {
		if strings.Contains(lower, cue) {
			return model.ModalityProhibition
		}
	}
	for _, cue := range obligationCues {
		if strings.Contains(lower, cue) {
			return model.ModalityObligation
		}
	}
	for _, cue := range rightCues {
		if strings.Contains(lower, cue) {
			return model.ModalityRight
		}
	}
	return model.ModalityOther
}
