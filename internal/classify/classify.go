// Package classify labels clauses and whole documents from keyword
// vocabularies. Both classifiers are deterministic: clause typing is a
// first-match scan over an ordered rule list, contract typing is a keyword
// count with declaration-order tie-breaking.
package classify

import (
	"strings"

	"github.com/clauseguard/clauseguard/internal/lexicon"
	"github.com/clauseguard/clauseguard/internal/model"
)

// Clause returns the category of a single clause. Rules are checked in
// priority order and the first keyword hit wins, so a clause matching
// several categories always resolves the same way.
func Clause(text string) model.ClauseType {
	lower := strings.ToLower(text)
	for _, rule := range lexicon.ClauseTypeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Type
			}
		}
	}
	return model.ClauseOther
}

// Contract labels the whole document by scoring each candidate type on how
// many of its keywords appear in the text. Ties go to the earlier
// declaration; zero matches everywhere falls back to the default type.
func Contract(text string) string {
	lower := strings.ToLower(text)

	best := lexicon.DefaultContractType
	bestScore := 0
	for _, entry := range lexicon.ContractTypeKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Name
			bestScore = score
		}
	}
	return best
}
