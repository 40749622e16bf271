// Package segment splits normalized contract text into an ordered sequence
// of clause strings. Segmentation is a pure function: same text in, same
// clauses out.
package segment

import (
	"regexp"
	"strings"
)

// fallbackWordThreshold is the running word count at which the
// sentence-accumulation fallback emits a clause.
const fallbackWordThreshold = 80

// minStructuredClauses is the minimum number of clauses the marker-based
// strategy must find before its output is trusted.
const minStructuredClauses = 3

// markerPattern matches common legal numbering at the start of a line:
// numeric sub-clauses ("1.1"), lettered or numbered sub-items in
// parentheses ("(a).", "(i)"), "ARTICLE IV", "SECTION 3".
var markerPattern = regexp.MustCompile(`(?m)^[ \t]*(?:\(?[a-zA-Z0-9]+\)[.)]|\d+\.\d+|ARTICLE\s+[IVXLC]+|SECTION\s+\d+)`)

// sentenceEnd approximates sentence boundaries for the fallback strategy:
// a terminator followed by whitespace and a capital letter, or a newline.
var sentenceEnd = regexp.MustCompile(`[.!?](\s+[A-Z]|\s*\n)`)

// Clauses splits contract text into clauses. The structured strategy keys on
// legal numbering markers; when that finds fewer than three clauses the text
// is assumed to be unstructured prose and grouped by sentence count instead.
// Non-empty input always yields at least one clause.
func Clauses(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	clauses := byMarkers(text)
	if len(clauses) < minStructuredClauses {
		clauses = bySentences(text)
	}
	if len(clauses) == 0 {
		// Degenerate outcome: all text as a single clause.
		clauses = []string{trimmed}
	}
	return clauses
}

// byMarkers begins a new clause at each numbering marker; text before the
// first marker becomes the opening clause.
func byMarkers(text string) []string {
	locs := markerPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var bounds []int
	if strings.TrimSpace(text[:locs[0][0]]) != "" {
		bounds = append(bounds, 0)
	}
	for _, loc := range locs {
		bounds = append(bounds, loc[0])
	}

	var clauses []string
	for i, start := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		chunk := strings.TrimSpace(text[start:end])
		if chunk != "" {
			clauses = append(clauses, chunk)
		}
	}
	return clauses
}

// bySentences groups consecutive sentences until the running word count
// reaches the threshold, then flushes any remainder as a final clause.
func bySentences(text string) []string {
	var clauses []string
	var current strings.Builder
	words := 0

	flush := func() {
		chunk := strings.TrimSpace(current.String())
		if chunk != "" {
			clauses = append(clauses, chunk)
		}
		current.Reset()
		words = 0
	}

	for _, sentence := range splitSentences(text) {
		current.WriteString(sentence)
		current.WriteString(" ")
		words += len(strings.Fields(sentence))
		if words >= fallbackWordThreshold {
			flush()
		}
	}
	flush()
	return clauses
}

// splitSentences cuts text at approximate sentence boundaries, keeping the
// terminator with the preceding sentence.
func splitSentences(text string) []string {
	var sentences []string
	rest := text
	for {
		loc := sentenceEnd.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		// Cut after the terminator, before the whitespace/capital.
		cut := loc[2]
		sentence := strings.TrimSpace(rest[:cut])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		rest = rest[cut:]
	}
	if s := strings.TrimSpace(rest); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
