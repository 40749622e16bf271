// Package finance converts flagged clauses and extracted amounts into a
// monetized exposure estimate. All amounts are whole rupees.
package finance

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/clauseguard/clauseguard/internal/model"
)

const (
	// defaultContractValue is assumed when no parsable amount exists.
	defaultContractValue int64 = 100_000
	// foreignLegalCost is the floor cost of foreign arbitration.
	foreignLegalCost int64 = 1_000_000
	// penaltyFallbackRate estimates an unparsed penalty clause as a
	// share of contract value.
	penaltyFallbackRate = 0.15
	// unlimitedExposureMultiple scales contract value into an exposure
	// estimate for uncapped indemnity or liability.
	unlimitedExposureMultiple int64 = 5
	// terminationDisruptionDays is the time to replace a client or
	// vendor after sudden termination.
	terminationDisruptionDays = 30
)

var foreignVenues = []string{"london", "singapore", "new york"}

var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// clauseAmountPattern finds the first amount-looking token inside clause
// text when a penalty clause names its own figure.
var clauseAmountPattern = regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)?\s*[\d][\d,]*`)

// Estimate derives the financial impact from the analyzed clauses and the
// amounts extracted from the document. Fields are additive accumulations
// across clauses; nothing is averaged or capped.
func Estimate(clauses []model.Clause, entities model.EntityBag) model.FinancialImpact {
	contractValue := contractValueFrom(entities)

	var penalty int64
	disruptionDays := 0
	var factors []string

	for _, clause := range clauses {
		if clause.Risk != model.RiskHigh {
			continue
		}
		lower := strings.ToLower(clause.Text)

		if strings.Contains(lower, "penalty") || strings.Contains(lower, "liquidated damages") {
			if amount := firstClauseAmount(clause.Text); amount > 0 {
				penalty += amount
				factors = append(factors, fmt.Sprintf("Penalty clause: ₹%s", FormatAmount(amount)))
			} else {
				estimated := int64(math.Round(float64(contractValue) * penaltyFallbackRate))
				penalty += estimated
				factors = append(factors, fmt.Sprintf("Penalty clause: ~₹%s (estimated)", FormatAmount(estimated)))
			}
		}

		if strings.Contains(lower, "unlimited") && (strings.Contains(lower, "indemnity") || strings.Contains(lower, "liability")) {
			exposure := contractValue * unlimitedExposureMultiple
			penalty += exposure
			factors = append(factors, fmt.Sprintf("Unlimited liability: ₹%s exposure", FormatAmount(exposure)))
		}

		if clause.Type == model.ClauseTermination {
			disruptionDays += terminationDisruptionDays
			factors = append(factors, "Termination risk: 30 days disruption")
		}

		for _, venue := range foreignVenues {
			if strings.Contains(lower, venue) {
				penalty += foreignLegalCost
				factors = append(factors, fmt.Sprintf("Foreign jurisdiction: ₹%s legal costs", FormatAmount(foreignLegalCost)))
				break
			}
		}
	}

	// No specific trigger fired but High-risk clauses exist: fall back to
	// a generic litigation estimate scaled by contract size.
	if penalty == 0 && hasHighRisk(clauses) {
		var litigation int64
		switch {
		case contractValue > 10_000_000: // above 1 crore
			litigation = 1_500_000
		case contractValue > 1_000_000: // above 10 lakh
			litigation = 500_000
		default:
			litigation = 200_000
		}
		penalty = litigation
		factors = append(factors, fmt.Sprintf("Contextual litigation risk: ₹%s (based on contract size)", FormatAmount(litigation)))
	}

	if penalty < 0 {
		penalty = 0
	}
	return model.FinancialImpact{
		PenaltyAmount:  penalty,
		DisruptionDays: disruptionDays,
		RiskFactors:    factors,
		ContractValue:  contractValue,
	}
}

func hasHighRisk(clauses []model.Clause) bool {
	for _, c := range clauses {
		if c.Risk == model.RiskHigh {
			return true
		}
	}
	return false
}

// contractValueFrom takes the maximum parsable amount from the entity bag;
// unparsable values are excluded, and an empty result defaults to 1 lakh.
func contractValueFrom(entities model.EntityBag) int64 {
	var max int64
	for _, raw := range entities[model.EntityAmounts] {
		if v := ParseIndianCurrency(raw); v > max {
			max = v
		}
	}
	if max == 0 {
		return defaultContractValue
	}
	return max
}

func firstClauseAmount(text string) int64 {
	if m := clauseAmountPattern.FindString(text); m != "" {
		return ParseIndianCurrency(m)
	}
	return 0
}

// ParseIndianCurrency extracts a rupee amount from strings like
// "₹2,00,000/-", "Rs. 50,000", "5 lakh" or "1.2 crore". Unparsable input
// returns 0 rather than an error so callers can simply exclude it.
func ParseIndianCurrency(s string) int64 {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return 0
	}

	if strings.Contains(lower, "lakh") {
		return scaled(lower, 100_000)
	}
	if strings.Contains(lower, "crore") {
		return scaled(lower, 10_000_000)
	}

	// Plain amount: strip currency markers, grouping commas, and the
	// dot from "Rs." so only digits remain.
	var digits strings.Builder
	for _, r := range lower {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func scaled(s string, unit int64) int64 {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(n * float64(unit)))
}

// FormatAmount renders an amount with thousands separators for display.
func FormatAmount(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
