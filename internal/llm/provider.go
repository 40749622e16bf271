package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clauseguard/clauseguard/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// EnrichClauses generates negotiation guidance for a batch of flagged
	// clauses in a single request
	EnrichClauses(ctx context.Context, reqs []ClauseRequest) ([]model.ClauseEnrichment, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ClauseRequest is one flagged clause submitted for enrichment.
type ClauseRequest struct {
	// ID is the clause identifier within the report
	ID int

	// Text is the full clause text
	Text string

	// Type is the classified clause type
	Type model.ClauseType

	// Risk is the rule-based tier already assigned
	Risk model.RiskTier

	// Triggers are the keywords that raised the clause
	Triggers []string
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond caps the outbound request rate
	RequestsPerSecond float64

	// Burst is the rate limiter burst size
	Burst int

	// CacheTTLMinutes controls how long enrichments are memoized
	CacheTTLMinutes int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Model:             "",
		Timeout:           60,
		MaxTokens:         8000,
		RequestsPerSecond: 1,
		Burst:             2,
		CacheTTLMinutes:   60,
	}
}

const systemPrompt = "You are a legal advisor helping Indian small business owners understand contract risks. Be practical and specific. Respond only with the JSON requested."

// BuildBatchPrompt constructs a single prompt covering every flagged
// clause. One request per analysis keeps API cost bounded regardless of
// contract length.
func BuildBatchPrompt(reqs []ClauseRequest) string {
	var b strings.Builder
	b.WriteString("Analyze these contract clauses for an Indian small business owner.\n\n")

	for i, req := range reqs {
		fmt.Fprintf(&b, "CLAUSE %d (type: %s, risk: %s", i+1, req.Type, req.Risk)
		if len(req.Triggers) > 0 {
			fmt.Fprintf(&b, ", flagged for: %s", strings.Join(req.Triggers, ", "))
		}
		b.WriteString("):\n")
		b.WriteString(truncateClause(req.Text))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, `Return a JSON array with exactly %d objects, one per clause in order. Each object must have these fields:
- "risk_level": "High", "Medium" or "Low"
- "business_consequences": array of 2-3 specific scenarios that could happen to the business
- "mitigation_strategies": array of objects, each with "name" (short label), "action" (exactly what to do or ask for), "clause_example" (safer rewording snippet), "timeline" (when to act, e.g. "Before signing")
- "plain_english": two sentences explaining the clause to someone with zero legal knowledge
- "standard_alternative": fairer replacement wording that protects both parties, or "" if acceptable
- "negotiation_script": exact words the owner can say when asking for the change

Use rupee amounts where possible. Return ONLY the JSON array, no other text.`, len(reqs))

	return b.String()
}

// maxClauseChars bounds each clause's contribution to the prompt.
const maxClauseChars = 1200

func truncateClause(text string) string {
	if len(text) <= maxClauseChars {
		return text
	}
	return text[:maxClauseChars] + "..."
}

// enrichmentPayload mirrors the JSON object requested from the model.
type enrichmentPayload struct {
	RiskLevel            string   `json:"risk_level"`
	BusinessConsequences []string `json:"business_consequences"`
	MitigationStrategies []struct {
		Name          string `json:"name"`
		Action        string `json:"action"`
		ClauseExample string `json:"clause_example"`
		Timeline      string `json:"timeline"`
	} `json:"mitigation_strategies"`
	PlainEnglish        string `json:"plain_english"`
	StandardAlternative string `json:"standard_alternative"`
	NegotiationScript   string `json:"negotiation_script"`
}

// parseBatchResponse extracts the JSON array from a model response and
// maps it onto the requested clauses. Missing or malformed entries get
// fallbacks so the result always covers every request.
func parseBatchResponse(raw string, reqs []ClauseRequest) ([]model.ClauseEnrichment, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var payloads []enrichmentPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payloads); err != nil {
		return nil, fmt.Errorf("unmarshal enrichment array: %w", err)
	}

	out := make([]model.ClauseEnrichment, len(reqs))
	for i, req := range reqs {
		if i < len(payloads) {
			out[i] = fromPayload(req, payloads[i])
		} else {
			out[i] = Fallback(req)
		}
	}
	return out, nil
}

func fromPayload(req ClauseRequest, p enrichmentPayload) model.ClauseEnrichment {
	e := model.ClauseEnrichment{
		ClauseID:             req.ID,
		RiskLevel:            p.RiskLevel,
		BusinessConsequences: p.BusinessConsequences,
		PlainEnglish:         strings.TrimSpace(p.PlainEnglish),
		StandardAlternative:  strings.TrimSpace(p.StandardAlternative),
		NegotiationScript:    strings.TrimSpace(p.NegotiationScript),
	}
	for _, s := range p.MitigationStrategies {
		e.MitigationStrategies = append(e.MitigationStrategies, model.MitigationStrategy{
			Name:          strings.TrimSpace(s.Name),
			Action:        strings.TrimSpace(s.Action),
			Timeline:      strings.TrimSpace(s.Timeline),
			ClauseExample: strings.TrimSpace(s.ClauseExample),
		})
	}
	// Per-field fallbacks keep partial responses usable.
	if e.RiskLevel == "" {
		e.RiskLevel = req.Risk.String()
	}
	if len(e.BusinessConsequences) == 0 {
		e.BusinessConsequences = []string{"Analysis completed"}
	}
	if e.PlainEnglish == "" {
		e.PlainEnglish = "Review this clause carefully."
	}
	if e.NegotiationScript == "" {
		e.NegotiationScript = "We would like to discuss this clause before signing."
	}
	return e
}

// Fallback returns deterministic guidance used when the provider is
// unavailable or its response cannot be parsed.
func Fallback(req ClauseRequest) model.ClauseEnrichment {
	return model.ClauseEnrichment{
		ClauseID:             req.ID,
		RiskLevel:            req.Risk.String(),
		BusinessConsequences: []string{"Review this clause with legal counsel before relying on it."},
		MitigationStrategies: []model.MitigationStrategy{
			{
				Name:     "Professional review",
				Action:   "Have a lawyer review this clause before signing",
				Timeline: "Before signing",
			},
		},
		PlainEnglish:        "This clause requires careful review.",
		StandardAlternative: "Consult legal counsel for a safer alternative.",
		NegotiationScript:   "We would like to discuss this clause before signing.",
	}
}
