package model

import "encoding/json"

// RiskTier is the ordered risk level of a clause or contract: Low < Medium < High.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
)

func (t RiskTier) String() string {
	switch t {
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Score returns the numeric weight used for contract-level aggregation.
func (t RiskTier) Score() int {
	switch t {
	case RiskHigh:
		return 5
	case RiskMedium:
		return 2
	default:
		return 1
	}
}

// MarshalJSON renders the tier as its display name so reports stay readable.
func (t RiskTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a tier name; anything unrecognized maps to Low.
func (t *RiskTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "High":
		*t = RiskHigh
	case "Medium":
		*t = RiskMedium
	default:
		*t = RiskLow
	}
	return nil
}

// ClauseType is the closed vocabulary of clause categories.
type ClauseType string

const (
	ClauseTermination       ClauseType = "Termination"
	ClauseIndemnity         ClauseType = "Indemnity"
	ClauseLiabilityCap      ClauseType = "Limitation of Liability"
	ClauseIP                ClauseType = "Intellectual Property"
	ClausePayment           ClauseType = "Payment"
	ClauseConfidentiality   ClauseType = "Confidentiality"
	ClauseGoverningLaw      ClauseType = "Governing Law"
	ClauseDisputeResolution ClauseType = "Dispute Resolution"
	ClauseForceMajeure      ClauseType = "Force Majeure"
	ClauseNonCompete        ClauseType = "Non-Compete"
	ClauseWarranties        ClauseType = "Warranties"
	ClauseOther             ClauseType = "Other"
)

// Modality captures the surface-level legal mood of a clause.
type Modality string

const (
	ModalityObligation  Modality = "Obligation"
	ModalityProhibition Modality = "Prohibition"
	ModalityRight       Modality = "Right"
	ModalityOther       Modality = "Other"
)

// Trigger is a single keyword match that contributed to a clause's risk tier.
type Trigger struct {
	Keyword     string   `json:"keyword"`
	Context     string   `json:"context"`     // surrounding clause text, ±30 chars
	Severity    RiskTier `json:"severity"`
	Explanation string   `json:"explanation"`
}

// Clause is one segmented unit of contract text, the atomic item of analysis.
// IDs are contiguous, 1-based, and follow document order.
type Clause struct {
	ID             int        `json:"id"`
	Text           string     `json:"text"`
	Type           ClauseType `json:"type"`
	Risk           RiskTier   `json:"risk"`
	Triggers       []Trigger  `json:"triggers,omitempty"`
	AmbiguousTerms []string   `json:"ambiguous_terms,omitempty"`
	Modality       Modality   `json:"modality"`
}
