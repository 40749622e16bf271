package model

// Entity categories extracted from the full contract text.
const (
	EntityParties         = "Parties (ORG)"
	EntityDates           = "Dates"
	EntityAmounts         = "Amounts"
	EntityJurisdiction    = "Jurisdiction (GPE)"
	EntityDeliverables    = "Deliverables"
	EntitySLAs            = "Performance Metrics (SLAs)"
	EntityMilestones      = "Timeline Milestones"
	EntityIPOwnership     = "IP Ownership"
	EntityConfidentiality = "Confidentiality Scope"
	EntityNoticePeriods   = "Notice Periods"
	EntityTermination     = "Termination Conditions"
	EntityLiabilityCaps   = "Liability Caps"
)

// EntityCategories lists every category in display order. Extraction always
// populates all twelve keys, empty or not, so consumers never nil-check.
var EntityCategories = []string{
	EntityParties,
	EntityDates,
	EntityAmounts,
	EntityJurisdiction,
	EntityDeliverables,
	EntitySLAs,
	EntityMilestones,
	EntityIPOwnership,
	EntityConfidentiality,
	EntityNoticePeriods,
	EntityTermination,
	EntityLiabilityCaps,
}

// EntityBag maps an entity category to its extracted values,
// deduplicated and sorted for display.
type EntityBag map[string][]string

// FinancialImpact is the monetized exposure estimate derived from
// flagged clauses and extracted amounts. Amounts are in whole rupees.
type FinancialImpact struct {
	PenaltyAmount  int64    `json:"penalty_amount"`
	DisruptionDays int      `json:"disruption_days"`
	RiskFactors    []string `json:"risk_factors,omitempty"`
	ContractValue  int64    `json:"contract_value"`
}
