package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clauseguard/clauseguard/internal/model"
)

func analyzedReport(t *testing.T, text string) *model.Report {
	t.Helper()
	p := newTestPipeline(t, testConfig())
	report, err := p.AnalyzeText(context.Background(), text)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}
	return report
}

func TestRenderJSON_RoundTrips(t *testing.T) {
	report := analyzedReport(t, riskyContract)
	path := filepath.Join(t.TempDir(), "report.json")

	r := NewRenderer(true)
	if err := r.RenderJSON(report, path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Report JSON does not parse: %v", err)
	}
	if decoded.Decision.Verdict != report.Decision.Verdict {
		t.Errorf("Verdict lost in serialization: %s vs %s", decoded.Decision.Verdict, report.Decision.Verdict)
	}
	if len(decoded.Clauses) != len(report.Clauses) {
		t.Errorf("Clauses lost in serialization: %d vs %d", len(decoded.Clauses), len(report.Clauses))
	}
}

func TestRenderMarkdown_Sections(t *testing.T) {
	report := analyzedReport(t, riskyContract)
	path := filepath.Join(t.TempDir(), "report.md")

	r := NewRenderer(true)
	if err := r.RenderMarkdown(report, path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	md := string(data)

	for _, section := range []string{
		"# Contract Analysis:",
		"## Verdict: REJECT",
		"## Red Flags",
		"## Financial Exposure",
		"## Must Negotiate",
		"## Clauses",
		"## Action Plan",
		"not legal advice",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("Markdown missing %q", section)
		}
	}
	if !strings.Contains(md, "| # | Type | Risk | Triggers |") {
		t.Error("Markdown missing clause table header")
	}
}

func TestRenderMarkdown_FooterOptional(t *testing.T) {
	report := analyzedReport(t, cleanContract)
	path := filepath.Join(t.TempDir(), "report.md")

	r := NewRenderer(false)
	if err := r.RenderMarkdown(report, path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if strings.Contains(string(data), "not legal advice") {
		t.Error("Footer should be omitted when disabled")
	}
}
