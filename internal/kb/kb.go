// Package kb provides a small, immutable knowledge base of labeled example
// clauses with keyword-overlap search. It is constructed once at startup
// and passed into the pipeline; lookups are read-only and safe for any
// number of concurrent readers.
package kb

import (
	"sort"
	"strings"
)

// Entry is one labeled example clause.
type Entry struct {
	Text     string
	Type     string
	Analysis string
}

// Match is a search hit with its overlap score.
type Match struct {
	Entry
	Score float64
}

// KnowledgeBase is the pre-loaded clause corpus.
type KnowledgeBase struct {
	entries []Entry
}

// New builds the knowledge base with its built-in corpus.
func New() *KnowledgeBase {
	return &KnowledgeBase{entries: []Entry{
		{"The Vendor shall indemnify the Client against all claims, unlimited in amount.", "Indemnity", "Risk: High. Unlimited liability can bankrupt a small vendor."},
		{"The Vendor's liability shall be capped at the total contract value.", "Indemnity", "Standard: Safe. Liability is limited to a reasonable amount."},
		{"This Agreement may be terminated by the Client at any time without notice.", "Termination", "Risk: High. Unilateral termination without notice creates business uncertainty."},
		{"Either party may terminate this Agreement with 30 days prior written notice.", "Termination", "Standard: Safe. Mutual termination with notice period."},
		{"Any dispute shall be subject to the exclusive jurisdiction of the courts in London, UK.", "Jurisdiction", "Risk: High. Foreign jurisdiction is expensive and impractical for Indian SMEs."},
		{"Disputes shall be resolved by arbitration in New Delhi under the Indian Arbitration Act.", "Jurisdiction", "Standard: Safe. Local arbitration is cost-effective."},
		{"The Client owns all Intellectual Property created by the Vendor during this engagement.", "IP", "Neutral. Standard for 'work for hire' but ensure you retain pre-existing IP."},
		{"Payment shall be made within 90 days of invoice receipt.", "Payment", "Risk: Medium. 90 days is a long cycle for SMEs; negotiate for 30-45 days."},
	}}
}

// Search returns the topK entries with the highest Jaccard word overlap
// against the query. Zero-overlap entries are never returned.
func (kb *KnowledgeBase) Search(query string, topK int) []Match {
	queryWords := wordSet(query)
	if len(queryWords) == 0 || topK <= 0 {
		return nil
	}

	matches := make([]Match, 0, len(kb.entries))
	for _, entry := range kb.entries {
		score := jaccard(queryWords, wordSet(entry.Text))
		if score > 0 {
			matches = append(matches, Match{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
