package model

import "time"

// LanguageMeta describes the pre-processing applied to non-English input.
// It is passed through to presentation untouched.
type LanguageMeta struct {
	IsHindi           bool                `json:"is_hindi"`
	TranslationMethod string              `json:"translation_method,omitempty"`
	RiskKeywords      map[string][]string `json:"risk_keywords_found,omitempty"` // tier -> native-script phrases
}

// Comparison scores a clause against the curated safe template for its type.
type Comparison struct {
	ClauseID            int        `json:"clause_id"`
	ClauseType          ClauseType `json:"clause_type"`
	SimilarityScore     int        `json:"similarity_score"` // 0-100
	Verdict             string     `json:"verdict"`          // SAFE, REVIEW NEEDED, RISKY
	StandardClause      string     `json:"standard_clause"`
	StandardDescription string     `json:"standard_description"`
	Differences         []string   `json:"differences,omitempty"`
	Recommendation      string     `json:"recommendation"`
}

// KBMatch links a clause to the nearest known example in the knowledge base.
type KBMatch struct {
	ClauseID int     `json:"clause_id"`
	Example  string  `json:"example"`
	Type     string  `json:"type"`
	Analysis string  `json:"analysis"`
	Score    float64 `json:"score"`
}

// MitigationStrategy is one actionable fix suggested for a clause.
type MitigationStrategy struct {
	Name          string `json:"name"`
	Action        string `json:"action"`
	Timeline      string `json:"timeline"`
	ClauseExample string `json:"clause_example,omitempty"`
}

// ClauseEnrichment holds the AI-generated narrative for a flagged clause.
// Every field is populated: when the service is unavailable the pipeline
// substitutes fixed fallback text rather than leaving fields empty.
type ClauseEnrichment struct {
	ClauseID             int                  `json:"clause_id"`
	RiskLevel            string               `json:"risk_level"`
	BusinessConsequences []string             `json:"business_consequences"`
	MitigationStrategies []MitigationStrategy `json:"mitigation_strategies"`
	PlainEnglish         string               `json:"plain_english"`
	StandardAlternative  string               `json:"standard_alternative"`
	NegotiationScript    string               `json:"negotiation_script"`
}

// EnrichmentStatus records whether AI enrichment ran and how it degraded.
type EnrichmentStatus struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Fallback bool     `json:"fallback"` // true when static fallback text was substituted
	Warnings []string `json:"warnings,omitempty"`
}

// Report is the complete, immutable snapshot of one analysis run.
type Report struct {
	SourcePath   string       `json:"source_path"`
	AnalyzedAt   time.Time    `json:"analyzed_at"`
	Language     LanguageMeta `json:"language"`
	ContractType string       `json:"contract_type"`

	Clauses  []Clause  `json:"clauses"`
	Entities EntityBag `json:"entities"`

	OverallRisk RiskTier        `json:"overall_risk"`
	Financial   FinancialImpact `json:"financial_impact"`
	Decision    Decision        `json:"decision"`

	Comparisons  []Comparison `json:"comparisons,omitempty"`
	SimilarKnown []KBMatch    `json:"similar_known_clauses,omitempty"`

	Enrichment       []ClauseEnrichment `json:"enrichment,omitempty"`
	EnrichmentStatus EnrichmentStatus   `json:"enrichment_status"`
}

// HighRiskCount counts clauses at the High tier.
func (r *Report) HighRiskCount() int {
	return r.countRisk(RiskHigh)
}

// MediumRiskCount counts clauses at the Medium tier.
func (r *Report) MediumRiskCount() int {
	return r.countRisk(RiskMedium)
}

func (r *Report) countRisk(tier RiskTier) int {
	n := 0
	for _, c := range r.Clauses {
		if c.Risk == tier {
			n++
		}
	}
	return n
}
