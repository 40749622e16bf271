// Package extract pulls structured facts out of the full contract text
// using regular-expression heuristics. It runs once per document,
// independent of clause segmentation.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/clauseguard/clauseguard/internal/model"
)

var (
	datePattern   = regexp.MustCompile(`(?i)\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December),?\s+\d{4}|\d{2}/\d{2}/\d{4}`)
	amountPattern = regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹|USD|\$)\s?[\d,]+(?:\.\d{2})?(?:/-)?(?:\s+(?:Lakh|Crore|Million|Billion))?`)
	partyPattern  = regexp.MustCompile(`(?i)BETWEEN\s+([A-Z][a-zA-Z0-9\s.,]+?)\s+(?:AND|&)\s+([A-Z][a-zA-Z0-9\s.,]+?)\s+(?:WHEREAS|dated|collected)`)
	gpePattern    = regexp.MustCompile(`(?i)(?:subject to|governed by).*?jurisdiction.*?courts.*?in\s+([A-Z][a-zA-Z\s]+)`)

	deliverablePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)deliver(?:able)?s?:?\s+([^.;]+)`),
		regexp.MustCompile(`(?i)(?:shall|will|must)\s+(?:provide|deliver|furnish)\s+([^.;]+)`),
		regexp.MustCompile(`(?i)work product(?:\s+includes?)?:?\s+([^.;]+)`),
	}

	slaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+%)\s+(?:uptime|availability)`),
		regexp.MustCompile(`(?i)(?:response time|turnaround time)(?:\s+of)?\s+(\d+\s+(?:hours?|days?|minutes?))`),
		regexp.MustCompile(`(?i)(?:SLA|service level):\s+([^.;]+)`),
		regexp.MustCompile(`(?i)(\d+)\s+(?:business days?|working days?)`),
	}

	milestonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)milestone\s+\d+:?\s+([^.;]+)`),
		regexp.MustCompile(`(?i)(?:phase|stage)\s+\d+:?\s+([^.;]+)`),
		regexp.MustCompile(`(?i)within\s+(\d+\s+(?:days?|weeks?|months?))\s+of\s+([^.;]+)`),
		regexp.MustCompile(`by\s+([A-Z][a-z]+\s+\d{1,2},?\s+\d{4})`),
	}

	ipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:intellectual property|IP|copyright|patent|trademark)\s+(?:shall|will)\s+(?:vest in|belong to|be owned by)\s+([^.;]+)`),
		regexp.MustCompile(`(?i)ownership of (?:work product|deliverables|IP):?\s+([^.;]+)`),
		regexp.MustCompile(`(?i)(?:Client|Vendor|Company)\s+(?:owns|retains)\s+(?:all rights|ownership)(?:\s+to)?(?:\s+the)?\s+([^.;]+)`),
	}

	confidentialityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)confidential information includes:?\s+([^.;]+)`),
		regexp.MustCompile(`(?i)confidentiality period(?:\s+of)?\s+(\d+\s+years?)`),
		regexp.MustCompile(`(?i)non-disclosure(?:\s+of)?:?\s+([^.;]+)`),
	}

	noticePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s+(?:days?|months?)\s+(?:written\s+)?notice`),
		regexp.MustCompile(`(?i)notice period(?:\s+of)?\s+(\d+\s+(?:days?|months?))`),
		regexp.MustCompile(`(?i)(?:upon|with)\s+(\d+\s+(?:days?|months?))\s+prior notice`),
	}

	terminationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:either party|Client|Vendor)\s+may terminate(?:\s+this agreement)?:?\s+([^.;]+)`),
		regexp.MustCompile(`(?i)grounds for termination:?\s+([^.;]+)`),
	}

	liabilityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:maximum|aggregate)\s+liability(?:\s+shall)?(?:\s+not)?\s+exceed\s+((?:Rs\.?|INR|₹)\s?[\d,]+)`),
		regexp.MustCompile(`(?i)liability(?:\s+is)?\s+limited to\s+([^.;]+)`),
		regexp.MustCompile(`(?i)cap(?:ped)?\s+at\s+((?:Rs\.?|INR|₹)\s?[\d,]+)`),
	}
)

// Entities extracts all twelve entity categories from the document text.
// Every category key is present in the result; values are deduplicated
// and sorted.
func Entities(text string) model.EntityBag {
	sets := make(map[string]map[string]bool, len(model.EntityCategories))
	for _, cat := range model.EntityCategories {
		sets[cat] = make(map[string]bool)
	}

	add := func(cat, value string) {
		v := strings.TrimSpace(value)
		if v != "" {
			sets[cat][v] = true
		}
	}

	for _, m := range datePattern.FindAllString(text, -1) {
		add(model.EntityDates, m)
	}
	for _, m := range amountPattern.FindAllString(text, -1) {
		add(model.EntityAmounts, m)
	}
	if m := partyPattern.FindStringSubmatch(text); m != nil {
		add(model.EntityParties, m[1])
		add(model.EntityParties, m[2])
	}
	for _, m := range gpePattern.FindAllStringSubmatch(text, -1) {
		add(model.EntityJurisdiction, m[1])
	}

	addGroups := func(cat string, patterns []*regexp.Regexp, limit int) {
		for _, p := range patterns {
			for _, m := range p.FindAllStringSubmatch(text, -1) {
				add(cat, clip(m[1], limit))
			}
		}
	}

	addGroups(model.EntityDeliverables, deliverablePatterns, 100)
	addGroups(model.EntitySLAs, slaPatterns, 100)
	addGroups(model.EntityIPOwnership, ipPatterns, 100)
	addGroups(model.EntityConfidentiality, confidentialityPatterns, 100)
	addGroups(model.EntityTermination, terminationPatterns, 100)
	addGroups(model.EntityLiabilityCaps, liabilityPatterns, 0)

	for _, p := range milestonePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) > 2 && m[2] != "" {
				add(model.EntityMilestones, clip(m[1]+" - "+m[2], 80))
			} else {
				add(model.EntityMilestones, clip(m[1], 80))
			}
		}
	}
	for _, p := range noticePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			add(model.EntityNoticePeriods, strings.TrimSpace(m[1])+" notice")
		}
	}

	bag := make(model.EntityBag, len(sets))
	for cat, values := range sets {
		sorted := make([]string, 0, len(values))
		for v := range values {
			sorted = append(sorted, v)
		}
		sort.Strings(sorted)
		bag[cat] = sorted
	}
	return bag
}

func clip(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
