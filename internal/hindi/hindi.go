// Package hindi normalizes Devanagari contract text so the English-keyword
// pipeline can analyze it uniformly. Normalization is dictionary-based:
// known Hindi legal terms are replaced with English equivalents, and
// native-script risk keywords are recorded before translation so nothing
// is lost in the mapping. Metadata is passed through to presentation
// untouched.
package hindi

import (
	"sort"
	"strings"
	"unicode"

	"github.com/clauseguard/clauseguard/internal/model"
)

// hindiThreshold is the share of Devanagari characters above which text
// is treated as Hindi.
const hindiThreshold = 0.05

// legalTerms maps Devanagari legal vocabulary to English equivalents.
var legalTerms = map[string]string{
	"समझौता":      "agreement",
	"अनुबंध":      "contract",
	"करार":        "contract",
	"संविदा":      "contract",
	"पक्षकार":     "party",
	"पक्ष":        "party",
	"विक्रेता":    "vendor",
	"खरीदार":      "buyer",
	"ग्राहक":      "client",
	"सेवा प्रदाता": "service provider",
	"किराया":      "rent",
	"भाड़ा":        "rent",
	"भुगतान":      "payment",
	"रकम":         "amount",
	"राशि":        "amount",
	"धनराशि":      "amount",
	"जुर्माना":    "penalty",
	"हर्जाना":     "damages",
	"मुआवजा":      "compensation",
	"अधिकार":      "rights",
	"दायित्व":     "liability",
	"जिम्मेदारी":  "responsibility",
	"कर्तव्य":     "duty",
	"स्वामित्व":   "ownership",
	"बौद्धिक संपदा": "intellectual property",
	"गोपनीयता":    "confidentiality",
	"समाप्ति":     "termination",
	"विवाद":       "dispute",
	"न्यायालय":    "court",
	"क्षेत्राधिकार": "jurisdiction",
	"मध्यस्थता":   "arbitration",
	"शर्त":        "condition",
	"प्रावधान":    "provision",
	"खंड":         "clause",
	"अनुच्छेद":    "article",
	"तारीख":       "date",
	"तिथि":        "date",
	"अवधि":        "duration",
	"समय":         "time",
	"वर्ष":        "year",
	"महीना":       "month",
	"हस्ताक्षर":   "signature",
	"साक्षी":      "witness",
	"सहमति":       "consent",
	"स्वीकृति":    "approval",
}

// riskKeywords are native-script phrases flagged per tier before any
// translation happens.
var riskKeywords = map[string][]string{
	"High": {
		"असीमित दायित्व",   // unlimited liability
		"बिना सूचना",       // without notice
		"एकपक्षीय समाप्ति", // unilateral termination
		"विदेशी न्यायालय",  // foreign court
		"पूर्ण विवेकाधिकार", // sole discretion
		"जुर्माना",         // penalty
		"हर्जाना",          // damages
	},
	"Medium": {
		"स्वतः नवीनीकरण",    // auto renewal
		"प्रतिस्पर्धा निषेध", // non-compete
		"उचित प्रयास",       // reasonable efforts
		"लागू होने पर",      // as applicable
	},
}

// orderedTerms returns dictionary keys longest first so compound phrases
// are replaced before their substrings.
func orderedTerms() []string {
	terms := make([]string, 0, len(legalTerms))
	for t := range legalTerms {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}

// IsHindi reports whether more than 5% of the non-whitespace characters
// are in the Devanagari block (U+0900 to U+097F).
func IsHindi(text string) bool {
	devanagari := 0
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0900 && r <= 0x097F {
			devanagari++
		}
	}
	if total == 0 {
		return false
	}
	return float64(devanagari)/float64(total) > hindiThreshold
}

// Normalize returns text usable by the English-keyword pipeline plus
// metadata about what was detected. Non-Hindi text passes through
// unchanged.
func Normalize(text string) (string, model.LanguageMeta) {
	if !IsHindi(text) {
		return text, model.LanguageMeta{IsHindi: false}
	}

	meta := model.LanguageMeta{
		IsHindi:           true,
		TranslationMethod: "dictionary_based",
		RiskKeywords:      DetectRiskKeywords(text),
	}

	translated := text
	for _, hindiTerm := range orderedTerms() {
		translated = strings.ReplaceAll(translated, hindiTerm, legalTerms[hindiTerm])
	}

	// Significant Devanagari left over: mark the partial translation so
	// downstream output is honest about coverage.
	if IsHindi(translated) {
		translated = "[Hindi Contract - Partial Translation]\n" + translated
	}
	return translated, meta
}

// DetectRiskKeywords returns the native-script risk phrases present in the
// text, keyed by tier. Tiers with no hits map to empty slices.
func DetectRiskKeywords(text string) map[string][]string {
	found := map[string][]string{"High": {}, "Medium": {}}
	for tier, keywords := range riskKeywords {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				found[tier] = append(found[tier], kw)
			}
		}
	}
	return found
}
