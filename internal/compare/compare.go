// Package compare scores a clause against the curated safe template for
// its type. Similarity is the classic Ratcliff/Obershelp sequence ratio:
// twice the total matched characters over the combined length, found by
// recursively matching around the longest common substring.
package compare

import (
	"strings"

	"github.com/clauseguard/clauseguard/internal/lexicon"
	"github.com/clauseguard/clauseguard/internal/model"
)

// Verdict thresholds on the 0-100 similarity score.
const (
	safeThreshold   = 70
	reviewThreshold = 40
)

const defaultRecommendation = "Review with legal counsel"

// Compare scores the clause against the safe template for clauseType.
// Returns nil when no template is curated for that type; comparison is
// simply omitted, never an error.
func Compare(clauseID int, clauseText string, clauseType model.ClauseType) *model.Comparison {
	std, ok := lexicon.StandardClauses[clauseType]
	if !ok {
		return nil
	}

	score := SimilarityScore(clauseText, std.Safe)

	verdict := "RISKY"
	switch {
	case score >= safeThreshold:
		verdict = "SAFE"
	case score >= reviewThreshold:
		verdict = "REVIEW NEEDED"
	}

	return &model.Comparison{
		ClauseID:            clauseID,
		ClauseType:          clauseType,
		SimilarityScore:     score,
		Verdict:             verdict,
		StandardClause:      std.Safe,
		StandardDescription: std.Description,
		Recommendation:      defaultRecommendation,
	}
}

// SimilarityScore returns the case-insensitive sequence ratio of two
// strings scaled to 0-100.
func SimilarityScore(a, b string) int {
	return int(Ratio(strings.ToLower(a), strings.ToLower(b)) * 100)
}

// Ratio computes 2*M/T where M is the total size of matched blocks and T
// the combined length. Identical strings score 1.0, disjoint strings 0.0.
func Ratio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 1.0
	}
	matched := matchedSize(a, b)
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// matchedSize finds the longest common substring, then recurses on the
// text to its left and right, summing block sizes.
func matchedSize(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchedSize(a[:ai], b[:bi])
	total += matchedSize(a[ai+size:], b[bi+size:])
	return total
}

// longestMatch locates the longest common substring of a and b using the
// rolling-row dynamic program. Earlier positions win ties, matching the
// conventional matcher behavior.
func longestMatch(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1
				if curr[j+1] > size {
					size = curr[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				curr[j+1] = 0
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}
