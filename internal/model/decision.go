package model

// Verdict is the three-way recommendation produced by the decision engine.
type Verdict string

const (
	VerdictSign      Verdict = "SIGN"
	VerdictNegotiate Verdict = "NEGOTIATE"
	VerdictReject    Verdict = "REJECT"
)

// RedFlag is a critical-severity pattern match used as an absolute
// decision override. ClauseID is a weak reference into the clause list.
type RedFlag struct {
	Type        string     `json:"type"`
	ClauseID    int        `json:"clause_id"`
	ClauseType  ClauseType `json:"clause_type"`
	Severity    string     `json:"severity"` // always "CRITICAL"
	Explanation string     `json:"explanation"`
	Excerpt     string     `json:"excerpt"`
}

// Remediation is a must-fix item tied to a High-risk clause.
type Remediation struct {
	ClauseID int    `json:"clause_id"`
	Title    string `json:"title"`
	Problem  string `json:"current_problem"`
	Request  string `json:"what_to_request"`
	Fallback string `json:"fallback_position"`
}

// Improvement is a nice-to-have negotiation item for a Medium-risk clause.
type Improvement struct {
	ClauseID   int    `json:"clause_id"`
	Title      string `json:"title"`
	Suggestion string `json:"improvement"`
}

// Consequences buckets the signing-outcome narratives by horizon.
type Consequences struct {
	Immediate  []string `json:"immediate_risks,omitempty"`
	Month1to3  []string `json:"month_1_3,omitempty"`
	Month3to12 []string `json:"month_3_12,omitempty"`
	LongTerm   []string `json:"long_term,omitempty"`
	WorstCase  string   `json:"worst_case_scenario,omitempty"`
}

// RejectionOutlook describes what walking away costs and buys.
type RejectionOutlook struct {
	ShortTerm      string `json:"short_term_impact"`
	Cost           string `json:"cost"`
	Benefit        string `json:"benefit"`
	Recommendation string `json:"recommendation"`
}

// ActionStep is one step of the verdict-specific action plan.
type ActionStep struct {
	Step     int    `json:"step"`
	Action   string `json:"action"`
	Timeline string `json:"timeline"`
	Critical bool   `json:"critical,omitempty"`
}

// Timeline estimates how long resolving the contract will take.
type Timeline struct {
	Estimate    string `json:"estimate"`
	Explanation string `json:"explanation"`
}

// Leverage assesses the reader's negotiating position for this contract type.
type Leverage struct {
	Position string `json:"position"`
	Reason   string `json:"reason"`
	Tips     string `json:"tips"`
}

// Decision is the complete business recommendation for a contract.
// Built once per analysis and never mutated afterwards.
type Decision struct {
	Verdict         Verdict          `json:"verdict"`
	DecisionScore   int              `json:"decision_score"` // 0-100, lower is safer
	Confidence      string           `json:"confidence"`     // Low, Medium, High
	Reasoning       string           `json:"primary_reasoning"`
	RedFlags        []RedFlag        `json:"red_flags,omitempty"`
	MustNegotiate   []Remediation    `json:"must_negotiate,omitempty"`
	NiceToNegotiate []Improvement    `json:"nice_to_negotiate,omitempty"`
	IfSigned        Consequences     `json:"consequences_if_signed"`
	IfRejected      RejectionOutlook `json:"consequences_if_rejected"`
	ActionPlan      []ActionStep     `json:"action_plan"`
	Timeline        Timeline         `json:"timeline"`
	Leverage        Leverage         `json:"negotiation_leverage"`
}
