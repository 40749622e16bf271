package risk

import (
	"strings"
	"testing"

	"github.com/clauseguard/clauseguard/internal/model"
)

func TestAssess_HighRiskKeyword(t *testing.T) {
	clause := "The Vendor accepts unlimited liability for any breach of this Agreement."
	got := Assess(clause)

	if got.Risk != model.RiskHigh {
		t.Errorf("Expected High risk, got %v", got.Risk)
	}
	if len(got.Triggers) != 1 {
		t.Fatalf("Expected 1 trigger, got %d", len(got.Triggers))
	}
	trig := got.Triggers[0]
	if trig.Keyword != "unlimited liability" {
		t.Errorf("Expected keyword 'unlimited liability', got %q", trig.Keyword)
	}
	if trig.Severity != model.RiskHigh {
		t.Errorf("Expected High severity, got %v", trig.Severity)
	}
	if !strings.Contains(trig.Context, "unlimited liability") {
		t.Errorf("Context should include the keyword, got %q", trig.Context)
	}
	if trig.Explanation == "" {
		t.Error("Expected a curated explanation, got empty string")
	}
}

func TestAssess_MediumRiskKeyword(t *testing.T) {
	clause := "The Client may terminate this Agreement upon 30 days written notice."
	got := Assess(clause)

	if got.Risk != model.RiskMedium {
		t.Errorf("Expected Medium risk, got %v", got.Risk)
	}
	if len(got.Triggers) == 0 {
		t.Fatal("Expected at least one trigger")
	}
	if got.Triggers[0].Keyword != "may terminate" {
		t.Errorf("Expected 'may terminate' trigger, got %q", got.Triggers[0].Keyword)
	}
}

func TestAssess_HighBeatsMedium(t *testing.T) {
	clause := "The Client may terminate without notice at its sole discretion."
	got := Assess(clause)

	if got.Risk != model.RiskHigh {
		t.Errorf("Expected High risk when both tiers match, got %v", got.Risk)
	}

	// High triggers come first in the list.
	if got.Triggers[0].Severity != model.RiskHigh {
		t.Errorf("Expected High triggers first, got %v", got.Triggers[0].Severity)
	}

	hasMedium := false
	for _, tr := range got.Triggers {
		if tr.Severity == model.RiskMedium {
			hasMedium = true
		}
	}
	if !hasMedium {
		t.Error("Expected the Medium trigger to still be recorded")
	}
}

func TestAssess_CleanClause(t *testing.T) {
	clause := "Both parties shall cooperate in good faith to complete the project."
	got := Assess(clause)

	if got.Risk != model.RiskLow {
		t.Errorf("Expected Low risk, got %v", got.Risk)
	}
	if len(got.Triggers) != 0 {
		t.Errorf("Expected no triggers, got %d", len(got.Triggers))
	}
}

func TestAssess_CaseInsensitive(t *testing.T) {
	got := Assess("TERMINATION MAY OCCUR WITHOUT NOTICE.")
	if got.Risk != model.RiskHigh {
		t.Errorf("Expected uppercase text to match, got %v", got.Risk)
	}
}

func TestAssess_ContextWindow(t *testing.T) {
	prefix := strings.Repeat("x", 100)
	suffix := strings.Repeat("y", 100)
	clause := prefix + " penalty " + suffix

	got := Assess(clause)
	if len(got.Triggers) == 0 {
		t.Fatal("Expected a trigger")
	}
	ctx := got.Triggers[0].Context
	// Keyword plus at most 30 chars each side, trimmed.
	if len(ctx) > len("penalty")+2*30+2 {
		t.Errorf("Context too long (%d chars): %q", len(ctx), ctx)
	}
}

func TestAmbiguity(t *testing.T) {
	clause := "The Vendor shall use best efforts to respond promptly, subject to availability."
	got := Ambiguity(clause)

	want := map[string]bool{"best efforts": true, "promptly": true, "subject to": true}
	for _, term := range got {
		if !want[term] {
			t.Errorf("Unexpected ambiguous term %q", term)
		}
		delete(want, term)
	}
	for term := range want {
		t.Errorf("Missing ambiguous term %q", term)
	}
}

func TestModality(t *testing.T) {
	tests := []struct {
		text string
		want model.Modality
	}{
		{"The Vendor shall not disclose any information.", model.ModalityProhibition},
		{"The Vendor shall deliver the goods by March.", model.ModalityObligation},
		{"The Client must approve all changes.", model.ModalityObligation},
		{"The Client may request additional services.", model.ModalityRight},
		{"The parties acknowledge the recitals above.", model.ModalityOther},
	}

	for _, tt := range tests {
		if got := Modality(tt.text); got != tt.want {
			t.Errorf("Modality(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
