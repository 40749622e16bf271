package llm

import (
	"strings"
	"testing"

	"github.com/clauseguard/clauseguard/internal/model"
)

func sampleRequests() []ClauseRequest {
	return []ClauseRequest{
		{ID: 1, Text: "The Vendor accepts unlimited liability.", Type: model.ClauseLiabilityCap, Risk: model.RiskHigh, Triggers: []string{"unlimited liability"}},
		{ID: 3, Text: "The Client may terminate at its discretion.", Type: model.ClauseTermination, Risk: model.RiskMedium},
	}
}

func TestBuildBatchPrompt(t *testing.T) {
	prompt := BuildBatchPrompt(sampleRequests())

	if !strings.Contains(prompt, "CLAUSE 1 (type: Limitation of Liability, risk: High, flagged for: unlimited liability):") {
		t.Errorf("Missing first clause header in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "CLAUSE 2 (type: Termination, risk: Medium):") {
		t.Errorf("Missing second clause header in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "exactly 2 objects") {
		t.Error("Prompt should request one object per clause")
	}
	for _, field := range []string{"risk_level", "business_consequences", "mitigation_strategies", "plain_english", "standard_alternative", "negotiation_script"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("Prompt missing field spec %q", field)
		}
	}
}

func TestTruncateClause(t *testing.T) {
	long := strings.Repeat("a", maxClauseChars+100)
	got := truncateClause(long)
	if len(got) != maxClauseChars+3 {
		t.Errorf("Expected truncation to %d chars plus ellipsis, got %d", maxClauseChars, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Expected ellipsis suffix on truncated clause")
	}
	if short := truncateClause("short clause"); short != "short clause" {
		t.Errorf("Short clause should pass through, got %q", short)
	}
}

func TestParseBatchResponse_ValidArray(t *testing.T) {
	raw := `Here is the analysis:
[
  {
    "risk_level": "High",
    "business_consequences": ["You could be sued for any amount."],
    "mitigation_strategies": [{"name": "Cap liability", "action": "Ask for a cap at contract value", "clause_example": "Liability shall not exceed the contract value.", "timeline": "Before signing"}],
    "plain_english": "You are responsible for everything, forever.",
    "standard_alternative": "Liability capped at contract value.",
    "negotiation_script": "We need a liability cap to proceed."
  },
  {
    "risk_level": "Medium",
    "business_consequences": ["Contract could end abruptly."],
    "mitigation_strategies": [],
    "plain_english": "They can walk away when they want.",
    "standard_alternative": "",
    "negotiation_script": "Can we add a notice period?"
  }
]`
	reqs := sampleRequests()
	enriched, err := parseBatchResponse(raw, reqs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(enriched) != 2 {
		t.Fatalf("Expected 2 enrichments, got %d", len(enriched))
	}
	if enriched[0].ClauseID != 1 || enriched[1].ClauseID != 3 {
		t.Errorf("Clause IDs should follow the requests, got %d and %d", enriched[0].ClauseID, enriched[1].ClauseID)
	}
	if enriched[0].RiskLevel != "High" {
		t.Errorf("Unexpected risk level %q", enriched[0].RiskLevel)
	}
	if len(enriched[0].MitigationStrategies) != 1 || enriched[0].MitigationStrategies[0].Name != "Cap liability" {
		t.Errorf("Mitigation strategies not mapped: %+v", enriched[0].MitigationStrategies)
	}
	if enriched[1].NegotiationScript != "Can we add a notice period?" {
		t.Errorf("Unexpected script %q", enriched[1].NegotiationScript)
	}
}

func TestParseBatchResponse_ShortArrayPadded(t *testing.T) {
	raw := `[{"risk_level": "High", "business_consequences": ["one"], "plain_english": "x.", "negotiation_script": "y."}]`
	reqs := sampleRequests()

	enriched, err := parseBatchResponse(raw, reqs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(enriched) != 2 {
		t.Fatalf("Expected padding to 2 enrichments, got %d", len(enriched))
	}
	if enriched[1].PlainEnglish != "This clause requires careful review." {
		t.Errorf("Expected fallback for the missing entry, got %q", enriched[1].PlainEnglish)
	}
	if enriched[1].RiskLevel != "Medium" {
		t.Errorf("Fallback should keep the rule-based tier, got %q", enriched[1].RiskLevel)
	}
}

func TestParseBatchResponse_NoArray(t *testing.T) {
	if _, err := parseBatchResponse("I cannot analyze this contract.", sampleRequests()); err == nil {
		t.Error("Expected error when response has no JSON array")
	}
	if _, err := parseBatchResponse("] backwards [", sampleRequests()); err == nil {
		t.Error("Expected error when brackets are reversed")
	}
}

func TestFromPayload_FieldFallbacks(t *testing.T) {
	req := sampleRequests()[0]
	enriched := fromPayload(req, enrichmentPayload{})

	if enriched.RiskLevel != "High" {
		t.Errorf("Expected rule-based tier fallback, got %q", enriched.RiskLevel)
	}
	if len(enriched.BusinessConsequences) != 1 || enriched.BusinessConsequences[0] != "Analysis completed" {
		t.Errorf("Unexpected consequences fallback: %v", enriched.BusinessConsequences)
	}
	if enriched.PlainEnglish != "Review this clause carefully." {
		t.Errorf("Unexpected plain-english fallback: %q", enriched.PlainEnglish)
	}
	if enriched.NegotiationScript != "We would like to discuss this clause before signing." {
		t.Errorf("Unexpected script fallback: %q", enriched.NegotiationScript)
	}
}

func TestFallback(t *testing.T) {
	req := ClauseRequest{ID: 7, Risk: model.RiskHigh}
	enriched := Fallback(req)

	if enriched.ClauseID != 7 {
		t.Errorf("Expected clause ID preserved, got %d", enriched.ClauseID)
	}
	if enriched.RiskLevel != "High" {
		t.Errorf("Expected rule-based tier, got %q", enriched.RiskLevel)
	}
	if len(enriched.MitigationStrategies) != 1 || enriched.MitigationStrategies[0].Timeline != "Before signing" {
		t.Errorf("Unexpected fallback mitigation: %+v", enriched.MitigationStrategies)
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(Config{Provider: ""}); p != nil || err != nil {
		t.Errorf("Empty provider name should disable enrichment, got %v, %v", p, err)
	}
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai without API key")
	}
	if _, err := NewProvider(Config{Provider: "gemini"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Unexpected error for ollama: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Unexpected provider name %q", p.Name())
	}
	p, err = NewProvider(Config{Provider: "anthropic", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Unexpected error for anthropic: %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("Unexpected provider name %q", p.Name())
	}
}
