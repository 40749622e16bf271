// Package lexicon holds the curated keyword tables the analysis pipeline
// matches against: risk keywords per tier, their explanations, ambiguous
// terms, clause and contract type vocabularies, red-flag patterns, and the
// standard safe clause templates. Everything here is immutable data.
package lexicon

import "github.com/clauseguard/clauseguard/internal/model"

// HighRiskKeywords are matched first; any hit makes the clause High risk.
// Order is preserved so trigger lists are deterministic.
var HighRiskKeywords = []string{
	"sole discretion",
	"unlimited liability",
	"without notice",
	"without cause",
	"penalty",
	"liquidated damages",
	"indemnify and hold harmless",
	"unilateral termination",
	"entire agreement",
	"arbitration in london",
	"arbitration in singapore",
	"courts at new york",
	"courts in london",
	"exclusive jurisdiction of",
	"perpetual",
	"irrevocable",
	"waive all claims",
	"no liability cap",
	"unlimited indemnity",
	"intellectual property shall transfer",
	"ip shall vest in",
	"all rights shall belong to",
	"ownership of all work product",
}

// MediumRiskKeywords are checked after the High tier; hits without any High
// match make the clause Medium risk.
var MediumRiskKeywords = []string{
	"may terminate",
	"reasonable efforts",
	"subject to",
	"automatically renew",
	"auto-renewal",
	"non-compete",
	"exclusivity",
	"stamp duty",
	"jurisdiction at delhi",
	"jurisdiction at mumbai",
	"as applicable",
	"from time to time",
	"best efforts",
	"lock-in period",
	"minimum term of",
	"shall not terminate for",
	"renews automatically unless",
	"evergreen clause",
}

var highExplanations = map[string]string{
	"sole discretion":                      "The other party can make decisions without consulting you. You have no say in critical matters affecting your business.",
	"unlimited liability":                  "You could be sued for ANY amount - even beyond the contract value. This could bankrupt your business.",
	"without notice":                       "The contract can be terminated immediately with no warning. You'll lose revenue overnight and have no time to prepare.",
	"without cause":                        "Termination can happen for any reason or no reason at all. Your business relationship has no stability.",
	"penalty":                              "You'll be charged extra fees beyond actual damages. These can be excessive and unfair.",
	"liquidated damages":                   "Pre-determined damages that may far exceed actual losses. Often used to trap small vendors.",
	"indemnify and hold harmless":          "You must pay for all their losses, including their legal mistakes. Extremely risky for SMEs.",
	"unilateral termination":               "Only one party can end the contract. You're locked in while they can leave anytime.",
	"entire agreement":                     "All prior discussions and promises are void. Only what's written in the contract counts - dangerous if you relied on verbal assurances.",
	"arbitration in london":                "Disputes must be resolved in London, UK. Cost of flying there + foreign lawyers = ₹10-50 lakhs minimum.",
	"arbitration in singapore":             "Singapore arbitration costs ₹15-60 lakhs. Impossible for most Indian SMEs to afford.",
	"courts at new york":                   "US court jurisdiction means US lawyers, US travel, US legal costs. Virtually impossible for small businesses.",
	"courts in london":                     "UK court means UK lawyers at £400-800/hour. Total cost could exceed your entire contract value.",
	"exclusive jurisdiction of":            "You can ONLY sue in their chosen location. No option for your local courts.",
	"perpetual":                            "This clause lasts forever - even after the contract ends. Very difficult to escape.",
	"irrevocable":                          "Cannot be changed or cancelled, even if circumstances change drastically.",
	"waive all claims":                     "You're giving up your legal rights to sue for damages. Extremely dangerous.",
	"no liability cap":                     "Same as unlimited liability - they can be sued for infinite amounts.",
	"unlimited indemnity":                  "You must pay for ALL their losses without any limit. Could exceed your business's net worth.",
	"intellectual property shall transfer": "All IP you create (even using your own tools) transfers to them. You lose ownership of your work forever.",
	"ip shall vest in":                     "IP ownership automatically goes to them. You can't reuse anything you built, even your own code/designs.",
	"all rights shall belong to":           "Complete transfer of all rights - you retain nothing. Extremely unfavorable for vendors/freelancers.",
	"ownership of all work product":        "They own everything you create during the project. May prevent you from offering similar services to others.",
}

var mediumExplanations = map[string]string{
	"may terminate":            "Gives termination rights but usually with some conditions. Check the notice period carefully.",
	"reasonable efforts":       "Vague obligation - what's 'reasonable'? Can lead to disputes about whether you fulfilled your duties.",
	"subject to":               "Creates conditional obligations. Make sure you understand what conditions apply.",
	"automatically renew":      "Contract renews without your action. You might forget to cancel and be locked in for another term.",
	"auto-renewal":             "Same as automatically renew. Set a calendar reminder before renewal date.",
	"non-compete":              "Restricts your ability to work with competitors. Check the duration and geographic scope - is it reasonable?",
	"exclusivity":              "You can ONLY work with this client/vendor. Limits your business growth opportunities.",
	"stamp duty":               "You may have to pay registration taxes. In some states, this is 3-7% of contract value.",
	"jurisdiction at delhi":    "All disputes go to Delhi courts. Fine if you're in Delhi, expensive if you're in Chennai or Guwahati.",
	"jurisdiction at mumbai":   "Mumbai jurisdiction. Travel and legal costs add up if you're based elsewhere.",
	"as applicable":            "Vague phrase - when does it apply and when doesn't it? Causes confusion later.",
	"from time to time":        "Gives them right to change terms occasionally. How often? With what notice? Get clarity.",
	"best efforts":             "Similar to 'reasonable efforts' - legally vague. What's 'best' for a small business vs. large corporation?",
	"lock-in period":           "You cannot terminate for a fixed period (often 1-3 years). Trapped even if service is terrible or your needs change.",
	"minimum term of":          "Similar to lock-in. You're committed for this period even if the relationship isn't working.",
	"shall not terminate for":  "Prevents termination for a specified duration. Make sure it's reasonable (12 months max recommended).",
	"renews automatically unless": "Auto-renewal. You must actively cancel or you're locked in for another full term. Set calendar reminders!",
	"evergreen clause":         "Contract continues indefinitely until someone cancels. Easy to forget and be locked in for years.",
}

// Explanation returns the curated text for a risk keyword, or the generic
// message for its tier when no curated text exists.
func Explanation(tier model.RiskTier, keyword string) string {
	if tier == model.RiskHigh {
		if e, ok := highExplanations[keyword]; ok {
			return e
		}
		return "This term creates significant risk."
	}
	if e, ok := mediumExplanations[keyword]; ok {
		return e
	}
	return "This term may need clarification."
}

// AmbiguousTerms are vague phrases worth flagging for clarification.
var AmbiguousTerms = []string{
	"reasonable",
	"best efforts",
	"as applicable",
	"from time to time",
	"subject to",
	"appropriate",
	"satisfactory",
	"promptly",
	"substantial",
	"material",
}

// ClauseTypeRule pairs a clause category with the keywords that select it.
type ClauseTypeRule struct {
	Type     model.ClauseType
	Keywords []string
}

// ClauseTypeRules are evaluated top to bottom; the first rule with any
// keyword hit wins. The order is load-bearing: a termination clause that
// also mentions payment must classify as Termination.
var ClauseTypeRules = []ClauseTypeRule{
	{model.ClauseTermination, []string{"terminate", "termination", "cancel", "cancellation", "end this agreement"}},
	{model.ClauseIndemnity, []string{"indemn", "hold harmless", "hold the", "defend and protect"}},
	{model.ClauseLiabilityCap, []string{"limitation of liability", "liability cap", "total liability", "shall not exceed", "maximum liability"}},
	{model.ClauseIP, []string{"intellectual property", "ip rights", "copyright", "trademark", "patent", "proprietary rights", "work product"}},
	{model.ClausePayment, []string{"payment", "pay", "fee", "invoice", "compensation", "remuneration", "consideration"}},
	{model.ClauseConfidentiality, []string{"confidential", "proprietary information", "non-disclosure", "trade secret"}},
	{model.ClauseGoverningLaw, []string{"governing law", "jurisdiction", "courts", "arbitration", "dispute resolution"}},
	{model.ClauseNonCompete, []string{"non-compete", "non compete", "not compete", "exclusivity", "exclusive"}},
	{model.ClauseForceMajeure, []string{"force majeure", "act of god", "beyond reasonable control"}},
	{model.ClauseWarranties, []string{"warrant", "warranty", "guarantee", "represent and warrant"}},
}

// ContractTypeKeywords score each candidate contract type by keyword count.
// Declaration order breaks ties.
type ContractTypeEntry struct {
	Name     string
	Keywords []string
}

var ContractTypeKeywords = []ContractTypeEntry{
	{"Employment Agreement", []string{
		"employment agreement", "offer letter", "employee", "employer",
		"salary", "probation period", "annual leave", "resignation",
	}},
	{"Lease Agreement", []string{
		"lease agreement", "rent agreement", "tenancy", "lessor", "lessee",
		"premises", "rent", "security deposit", "lease period",
	}},
	{"Vendor Contract", []string{
		"vendor", "supplier", "purchase order", "delivery of goods",
		"service provider", "contractor", "subcontractor",
	}},
	{"Partnership Deed", []string{
		"partnership deed", "partners", "profit sharing", "capital contribution",
		"partnership firm", "mutual agreement between partners",
	}},
	{"Non-Disclosure Agreement (NDA)", []string{
		"non-disclosure", "confidentiality", "nda", "proprietary information",
		"confidential information", "trade secrets",
	}},
	{"Service Agreement", []string{
		"service agreement", "services", "deliverables", "scope of work",
		"statement of work", "professional services",
	}},
}

// DefaultContractType is returned when no keywords match at all.
const DefaultContractType = "Service Agreement"

// StandardClause is a curated safe template for one clause type.
type StandardClause struct {
	Safe        string
	Description string
	Benefits    []string
}

// StandardClauses are the known-good templates the comparison engine
// scores against. Types without a template are simply not compared.
var StandardClauses = map[model.ClauseType]StandardClause{
	model.ClauseTermination: {
		Safe:        "Either party may terminate this Agreement by providing 30 days' prior written notice to the other party. Upon termination, the Client shall pay for all services rendered up to the date of termination, and the Vendor shall return all Client materials within 7 days.",
		Description: "Mutual termination rights with notice period",
		Benefits: []string{
			"Reduces unilateral power (both parties have equal rights)",
			"Gives you 30 days to find new revenue sources",
			"Ensures you get paid for work already done",
		},
	},
	model.ClauseIndemnity: {
		Safe:        "Each party agrees to indemnify the other only for direct damages caused by that party's gross negligence or willful misconduct. The total liability under this indemnity shall not exceed the total fees paid under this Agreement in the 12 months preceding the claim.",
		Description: "Capped, mutual indemnity for gross negligence only",
		Benefits: []string{
			"Protects you from infinite financial liability",
			"Limits responsibility to your own major mistakes only",
			"Prevents minor errors from bankrupting your business",
		},
	},
	model.ClauseLiabilityCap: {
		Safe:        "Neither party's total liability under this Agreement shall exceed the fees paid in the 12 months preceding the claim. Neither party shall be liable for indirect, consequential, or punitive damages.",
		Description: "Reasonable cap with exclusions for consequential damages",
		Benefits: []string{
			"Caps your maximum risk to a known amount (contract value)",
			"Protects you from massive 'consequential' logic damages",
			"Standardizes risk for both parties",
		},
	},
	model.ClausePayment: {
		Safe:        "The Client shall pay the Vendor within 30 days of receiving a valid invoice. Late payments shall incur interest at 1% per month. If payment is more than 60 days overdue, the Vendor may suspend services after written notice.",
		Description: "Standard 30-day payment terms with clear consequences",
		Benefits: []string{
			"Ensures predictable cash flow (Net 30)",
			"Gives you leverage to stop work if not paid",
			"Adds a penalty for late payments to encourage speed",
		},
	},
	model.ClauseConfidentiality: {
		Safe:        "Both parties agree to keep all proprietary information confidential for the term of this Agreement and for 2 years thereafter. This does not apply to information that becomes publicly available or is independently developed.",
		Description: "Mutual confidentiality with time limit and standard exceptions",
		Benefits: []string{
			"Reduces perpetual liability (ends after 2 years)",
			"Protects your trade secrets too, not just theirs",
			"Clarifies that public info is not confidential",
		},
	},
	model.ClauseGoverningLaw: {
		Safe:        "This Agreement shall be governed by the laws of India. Any disputes shall be subject to the jurisdiction of courts where the Defendant resides, or by mutual agreement, resolved through arbitration in accordance with the Arbitration and Conciliation Act, 1996.",
		Description: "Indian law with defendant-location jurisdiction (fair to both parties)",
		Benefits: []string{
			"Avoids expensive foreign courts (UK/US/Singapore)",
			"Ensures you are sued in your home city, not theirs",
			"Lowers legal defense costs significantly",
		},
	},
	model.ClauseIP: {
		Safe:        "All work product created specifically for this project shall be owned by the Client upon full payment. The Vendor retains ownership of all pre-existing IP and tools used to create the deliverables.",
		Description: "Client owns new work; Vendor keeps pre-existing tools/IP",
		Benefits: []string{
			"Prevents you from losing your core tools/libraries",
			"Conditioning ownership on 'full payment' protects your fees",
			"Clarifies exactly what they own vs. what you keep",
		},
	},
	model.ClauseNonCompete: {
		Safe:        "During the term of this Agreement, the Vendor shall not provide substantially similar services to direct competitors of the Client within the same city/region. This restriction does not apply after termination.",
		Description: "Limited non-compete during contract term only, reasonable geographic scope",
		Benefits: []string{
			"Allows you to work with others after the contract ends",
			"Limits restrictions to a specific location only",
			"Prevents them from blocking your entire livelihood",
		},
	},
}

// RedFlagPattern is an absolute deal-breaker pattern scanned only in
// High-risk clauses.
type RedFlagPattern struct {
	Type        string
	Patterns    []string
	Explanation string
}

// RedFlagPatterns are the critical patterns the decision engine treats as
// walkaway triggers. The explanation is a static lookup, independent of
// any AI call.
var RedFlagPatterns = []RedFlagPattern{
	{
		Type:        "unlimited_liability",
		Patterns:    []string{"unlimited liability", "unlimited indemnity", "no liability cap"},
		Explanation: "You could be sued for ANY amount - potentially bankrupting your business over a minor issue.",
	},
	{
		Type:        "foreign_jurisdiction",
		Patterns:    []string{"courts in london", "courts at new york", "singapore", "arbitration in london"},
		Explanation: "Disputes in foreign courts cost ₹10-50 lakhs minimum. Practically impossible for SMEs.",
	},
	{
		Type:        "instant_termination",
		Patterns:    []string{"without notice", "without cause", "sole discretion"},
		Explanation: "They can end the contract tomorrow without warning. Zero business stability.",
	},
	{
		Type:        "perpetual_obligations",
		Patterns:    []string{"perpetual", "irrevocable", "permanent"},
		Explanation: "These obligations last FOREVER - even after contract ends. Extremely dangerous.",
	},
	{
		Type:        "assignment_of_all_ip",
		Patterns:    []string{"all intellectual property", "all ip rights", "assigns all rights"},
		Explanation: "You lose ownership of your own intellectual property. Can't reuse your own work.",
	},
}
