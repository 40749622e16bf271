// Package decision converts aggregated risk, financial exposure, and
// red-flag signals into a business recommendation: a verdict, a 0-100
// danger score, remediation lists, consequence simulations, an action
// plan, and a leverage assessment. Every narrative here is a static
// lookup; no external service is involved.
package decision

import (
	"fmt"
	"strings"

	"github.com/clauseguard/clauseguard/internal/lexicon"
	"github.com/clauseguard/clauseguard/internal/model"
)

// Score weights, tuned empirically. Do not adjust without product input.
const (
	highClausePoints   = 20
	mediumClausePoints = 5
	redFlagPoints      = 15

	largePenaltyThreshold = 500_000
	largePenaltyBonus     = 25
	midPenaltyThreshold   = 200_000
	midPenaltyBonus       = 15

	rejectScoreThreshold = 70
	signScoreThreshold   = 20

	redFlagExcerptLen = 150
	niceToNegotiateCap = 3
)

// Decide builds the complete decision for an analyzed contract.
func Decide(clauses []model.Clause, fin model.FinancialImpact, contractType string) model.Decision {
	redFlags := detectRedFlags(clauses)

	highCount := 0
	mediumCount := 0
	for _, c := range clauses {
		switch c.Risk {
		case model.RiskHigh:
			highCount++
		case model.RiskMedium:
			mediumCount++
		}
	}

	score := decisionScore(highCount, mediumCount, fin.PenaltyAmount, len(redFlags))
	verdict := determineVerdict(score, highCount, len(redFlags))

	return model.Decision{
		Verdict:         verdict,
		DecisionScore:   score,
		Confidence:      confidence(score, highCount),
		Reasoning:       reasoning(verdict, highCount, mediumCount, redFlags),
		RedFlags:        redFlags,
		MustNegotiate:   mustNegotiate(clauses),
		NiceToNegotiate: niceToNegotiate(clauses),
		IfSigned:        signingConsequences(clauses, fin),
		IfRejected:      rejectionOutlook(),
		ActionPlan:      actionPlan(verdict, highCount),
		Timeline:        timeline(verdict, highCount),
		Leverage:        leverage(contractType),
	}
}

// detectRedFlags scans only High-risk clauses for the critical patterns.
// One clause can raise several flags of different types, but never two of
// the same type.
func detectRedFlags(clauses []model.Clause) []model.RedFlag {
	var flags []model.RedFlag
	for _, clause := range clauses {
		if clause.Risk != model.RiskHigh {
			continue
		}
		lower := strings.ToLower(clause.Text)
		for _, rf := range lexicon.RedFlagPatterns {
			for _, pattern := range rf.Patterns {
				if strings.Contains(lower, pattern) {
					flags = append(flags, model.RedFlag{
						Type:        rf.Type,
						ClauseID:    clause.ID,
						ClauseType:  clause.Type,
						Severity:    "CRITICAL",
						Explanation: rf.Explanation,
						Excerpt:     excerpt(clause.Text),
					})
					break
				}
			}
		}
	}
	return flags
}

func excerpt(text string) string {
	if len(text) > redFlagExcerptLen {
		return text[:redFlagExcerptLen]
	}
	return text
}

// decisionScore maps risk counts and financial exposure onto 0-100,
// where 0 is perfectly safe and 100 is extremely dangerous.
func decisionScore(highCount, mediumCount int, penalty int64, redFlags int) int {
	score := highCount*highClausePoints + mediumCount*mediumClausePoints + redFlags*redFlagPoints

	if penalty > largePenaltyThreshold {
		score += largePenaltyBonus
	} else if penalty > midPenaltyThreshold {
		score += midPenaltyBonus
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func determineVerdict(score, highCount, redFlags int) model.Verdict {
	if redFlags >= 3 || highCount >= 4 || score >= rejectScoreThreshold {
		return model.VerdictReject
	}
	if score <= signScoreThreshold && highCount == 0 {
		return model.VerdictSign
	}
	return model.VerdictNegotiate
}

func confidence(score, highCount int) string {
	if score <= 15 || score >= 80 || highCount == 0 {
		return "High"
	}
	return "Medium"
}

func reasoning(verdict model.Verdict, highCount, mediumCount int, flags []model.RedFlag) string {
	switch verdict {
	case model.VerdictSign:
		return fmt.Sprintf("Contract appears safe with only %d minor concern(s). Standard terms for Indian SMEs.", mediumCount)
	case model.VerdictNegotiate:
		return fmt.Sprintf("Found %d critical issue(s) and %d concern(s). Fixable through negotiation - don't sign as-is.", highCount, mediumCount)
	default:
		flagText := "multiple critical issues"
		if len(flags) > 0 {
			names := make([]string, 0, 2)
			for i, f := range flags {
				if i >= 2 {
					break
				}
				names = append(names, strings.ReplaceAll(f.Type, "_", " "))
			}
			flagText = strings.Join(names, ", ")
		}
		return fmt.Sprintf("CONTRACT IS DANGEROUS. %d high-risk clauses including %s. Recommend finding a different vendor/client.", highCount, flagText)
	}
}

// fallbackPositions give the minimum acceptable change per clause-type
// keyword when the ideal request is refused.
var fallbackPositions = []struct {
	key      string
	position string
}{
	{"termination", "Minimum: 30-day notice period + payment for work completed"},
	{"indemnity", "Minimum: Cap liability at contract value"},
	{"governing law", "Minimum: Arbitration in India (not foreign court)"},
	{"payment", "Minimum: Payment within 45 days (not 60-90)"},
	{"non-compete", "Minimum: Limit to 1 year and same city only"},
}

const genericFallback = "Minimum: Add reasonable limits and mutual obligations"

func fallbackFor(clauseType model.ClauseType) string {
	lower := strings.ToLower(string(clauseType))
	for _, fb := range fallbackPositions {
		if strings.Contains(lower, fb.key) {
			return fb.position
		}
	}
	return genericFallback
}

// mustNegotiate lists every High-risk clause with its problem, the change
// to request, and the minimum acceptable fallback.
func mustNegotiate(clauses []model.Clause) []model.Remediation {
	var items []model.Remediation
	for _, clause := range clauses {
		if clause.Risk != model.RiskHigh {
			continue
		}
		items = append(items, model.Remediation{
			ClauseID: clause.ID,
			Title:    string(clause.Type),
			Problem:  problemSummary(clause),
			Request:  requestedChange(clause),
			Fallback: fallbackFor(clause.Type),
		})
	}
	return items
}

func problemSummary(clause model.Clause) string {
	if len(clause.Triggers) > 0 {
		return clause.Triggers[0].Explanation
	}
	return "This clause creates significant risk for your business."
}

func requestedChange(clause model.Clause) string {
	if std, ok := lexicon.StandardClauses[clause.Type]; ok {
		return "Replace with a balanced clause: " + std.Description
	}
	return "Add reasonable limits and mutual obligations"
}

// niceToNegotiate lists up to three Medium-risk clauses with a suggested
// improvement. The cap keeps the negotiation ask focused.
func niceToNegotiate(clauses []model.Clause) []model.Improvement {
	var items []model.Improvement
	for _, clause := range clauses {
		if clause.Risk != model.RiskMedium {
			continue
		}
		suggestion := "Clarify this clause before signing."
		if len(clause.Triggers) > 0 {
			suggestion = clause.Triggers[0].Explanation
		}
		items = append(items, model.Improvement{
			ClauseID:   clause.ID,
			Title:      string(clause.Type),
			Suggestion: suggestion,
		})
		if len(items) == niceToNegotiateCap {
			break
		}
	}
	return items
}

// signingConsequences simulates what signing as-is leads to, bucketed by
// horizon. The worst case only triggers when at least two distinct
// High-risk clause types combine.
func signingConsequences(clauses []model.Clause, fin model.FinancialImpact) model.Consequences {
	var out model.Consequences

	highTypes := make([]model.ClauseType, 0, len(clauses))
	seenTypes := make(map[model.ClauseType]bool)
	foreignLaw := false

	for _, clause := range clauses {
		if clause.Risk != model.RiskHigh {
			continue
		}
		if !seenTypes[clause.Type] {
			seenTypes[clause.Type] = true
			highTypes = append(highTypes, clause.Type)
		}
		switch clause.Type {
		case model.ClauseTermination:
			out.Immediate = append(out.Immediate,
				"They can terminate tomorrow without warning. You lose all recurring revenue instantly.")
		case model.ClausePayment:
			out.Month1to3 = append(out.Month1to3,
				"You'll be waiting 60-90 days for payment. Cash flow crisis likely.")
		case model.ClauseGoverningLaw:
			foreignLaw = true
		}
	}

	if fin.PenaltyAmount > 0 {
		out.Month3to12 = append(out.Month3to12,
			fmt.Sprintf("If contract disputes arise, you face ₹%d in penalties and legal fees.", fin.PenaltyAmount))
	}
	if foreignLaw {
		out.LongTerm = append(out.LongTerm,
			"Any legal dispute will cost ₹10-50 lakhs in foreign legal fees. Practically unwinnable.")
	}
	if len(highTypes) >= 2 {
		out.WorstCase = fmt.Sprintf(
			"Combination of %s and %s clauses could lead to business closure, bankruptcy, or ₹%d+ in total losses.",
			highTypes[0], highTypes[1], fin.PenaltyAmount+500_000)
	}
	return out
}

func rejectionOutlook() model.RejectionOutlook {
	return model.RejectionOutlook{
		ShortTerm:      "Need to find alternative vendor/client. Could take 2-6 weeks.",
		Cost:           "Time investment in new search. Possible delay in project/revenue.",
		Benefit:        "Avoid massive legal and financial risks. Better to restart than sign dangerous contract.",
		Recommendation: "If they won't negotiate the critical issues, walking away is the smart business decision.",
	}
}

func actionPlan(verdict model.Verdict, highCount int) []model.ActionStep {
	switch verdict {
	case model.VerdictSign:
		return []model.ActionStep{
			{Step: 1, Action: "Review one final time with stakeholders", Timeline: "Today"},
			{Step: 2, Action: "Sign and keep copy for records", Timeline: "Today"},
			{Step: 3, Action: "Set calendar reminders for key dates (renewal, termination notice deadlines)", Timeline: "This week"},
		}
	case model.VerdictNegotiate:
		return []model.ActionStep{
			{Step: 1, Action: fmt.Sprintf("Schedule call with other party. Topic: 'Concerns about %d contract clauses'", highCount), Timeline: "Within 3 days"},
			{Step: 2, Action: "Send this report + list of required changes (see 'Must Negotiate' section)", Timeline: "Before call"},
			{Step: 3, Action: "In negotiation, focus on the 'Must Negotiate' clauses. Be firm but professional.", Timeline: "During call"},
			{Step: 4, Action: "If they agree to changes: Get revised draft and re-analyze it", Timeline: "Within 1 week"},
			{Step: 5, Action: "If they refuse to negotiate: Reconsider the partnership (see 'Consequences if Rejected')", Timeline: "Decision point"},
		}
	default:
		return []model.ActionStep{
			{Step: 1, Action: "DO NOT SIGN this contract", Timeline: "Immediate", Critical: true},
			{Step: 2, Action: "Email them: 'After legal review, we need major revisions to proceed. Can we discuss?'", Timeline: "Today"},
			{Step: 3, Action: "If they're willing to rewrite the dangerous clauses completely: Request new draft", Timeline: "Within 3 days"},
			{Step: 4, Action: "If they refuse or push back: Start looking for alternative vendors/clients", Timeline: "Immediately"},
			{Step: 5, Action: "Remember: It's better to walk away than to sign a contract that could destroy your business", Timeline: "Always"},
		}
	}
}

func timeline(verdict model.Verdict, highCount int) model.Timeline {
	switch verdict {
	case model.VerdictSign:
		return model.Timeline{
			Estimate:    "1-2 days",
			Explanation: "Quick final review and signing",
		}
	case model.VerdictNegotiate:
		days := 7 + highCount*3
		return model.Timeline{
			Estimate:    fmt.Sprintf("%d-%d days", days, days+7),
			Explanation: fmt.Sprintf("Negotiating %d major clause(s) + revisions + re-review", highCount),
		}
	default:
		return model.Timeline{
			Estimate:    "2-6 weeks",
			Explanation: "If they agree to major rewrite: 2-3 weeks. If you find new vendor: 4-6 weeks",
		}
	}
}

var leverageByContractType = map[string]model.Leverage{
	"Vendor Contract": {
		Position: "Moderate",
		Reason:   "As a vendor, you can negotiate but may have less power than client",
		Tips:     "Focus on limiting liability and ensuring fair payment terms",
	},
	"Service Agreement": {
		Position: "Moderate-High",
		Reason:   "Service contracts are typically more negotiable",
		Tips:     "Push for mutual obligations and reasonable termination clauses",
	},
	"Employment Agreement": {
		Position: "Low-Moderate",
		Reason:   "Employers usually have more leverage, but key clauses are negotiable",
		Tips:     "Focus on non-compete scope, IP ownership, and notice periods",
	},
	"Lease Agreement": {
		Position: "Low",
		Reason:   "Property owners typically have stronger position",
		Tips:     "Negotiate on rent escalation, maintenance, and security deposit",
	},
}

func leverage(contractType string) model.Leverage {
	if l, ok := leverageByContractType[contractType]; ok {
		return l
	}
	return model.Leverage{
		Position: "Moderate",
		Reason:   "Most contract terms are negotiable for businesses",
		Tips:     "Be professional but firm on critical safety clauses",
	}
}
