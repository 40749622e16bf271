package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/clauseguard/clauseguard/internal/audit"
	"github.com/clauseguard/clauseguard/internal/model"
)

const riskyContract = `SERVICE CONTRACT

1. The Vendor shall have unlimited liability for all claims arising from the services.
2. The Client may terminate this agreement at any time without notice.
3. All disputes shall be settled by arbitration in London.
4. The Vendor agrees to indemnify and hold harmless the Client from all losses.
5. Payment shall be made within 90 days of invoice.`

const cleanContract = `AGREEMENT

1. The Vendor shall provide monthly reports to the Client.
2. Payment shall be made within 30 days of invoice.
3. This agreement shall be governed by the laws of India.`

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Audit.Enabled = false
	return cfg
}

func newTestPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New pipeline failed: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestAnalyzeText_RiskyContract(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	report, err := p.AnalyzeText(context.Background(), riskyContract)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if len(report.Clauses) != 6 {
		t.Fatalf("Expected 6 clauses (preamble + 5 numbered), got %d", len(report.Clauses))
	}
	for i, c := range report.Clauses {
		if c.ID != i+1 {
			t.Errorf("Clause IDs should be contiguous in document order, got %d at %d", c.ID, i)
		}
	}

	if report.OverallRisk != model.RiskHigh {
		t.Errorf("Expected High overall risk, got %s", report.OverallRisk)
	}
	if report.Decision.Verdict != model.VerdictReject {
		t.Errorf("Expected REJECT for four High clauses, got %s", report.Decision.Verdict)
	}
	if report.ContractType == "" {
		t.Error("Expected a contract type")
	}
	if report.AnalyzedAt.IsZero() {
		t.Error("Expected analysis timestamp")
	}
	if len(report.Comparisons) == 0 {
		t.Error("Expected template comparisons for flagged clauses")
	}
	if len(report.SimilarKnown) == 0 {
		t.Error("Expected knowledge base matches for High clauses")
	}
	if report.EnrichmentStatus.Enabled {
		t.Error("Enrichment should be disabled by default")
	}
	if report.Enrichment != nil {
		t.Errorf("Expected no enrichment, got %d entries", len(report.Enrichment))
	}
}

func TestAnalyzeText_CleanContract(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	report, err := p.AnalyzeText(context.Background(), cleanContract)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if report.OverallRisk != model.RiskLow {
		t.Errorf("Expected Low overall risk, got %s", report.OverallRisk)
	}
	if report.Decision.Verdict != model.VerdictSign {
		t.Errorf("Expected SIGN, got %s", report.Decision.Verdict)
	}
	if report.Decision.DecisionScore != 0 {
		t.Errorf("Expected score 0, got %d", report.Decision.DecisionScore)
	}
	if len(report.Decision.RedFlags) != 0 {
		t.Errorf("Expected no red flags, got %d", len(report.Decision.RedFlags))
	}
}

func TestAnalyzeText_DeterministicClauses(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	first, err := p.AnalyzeText(context.Background(), riskyContract)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}
	second, err := p.AnalyzeText(context.Background(), riskyContract)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if len(first.Clauses) != len(second.Clauses) {
		t.Fatalf("Clause counts differ: %d vs %d", len(first.Clauses), len(second.Clauses))
	}
	for i := range first.Clauses {
		if first.Clauses[i].Risk != second.Clauses[i].Risk || first.Clauses[i].Type != second.Clauses[i].Type {
			t.Errorf("Clause %d differs across runs", i+1)
		}
	}
	if first.Decision.DecisionScore != second.Decision.DecisionScore {
		t.Errorf("Decision scores differ: %d vs %d", first.Decision.DecisionScore, second.Decision.DecisionScore)
	}
}

func TestAnalyzeText_EmptyInput(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	report, err := p.AnalyzeText(context.Background(), "")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}
	if len(report.Clauses) != 0 {
		t.Errorf("Expected no clauses, got %d", len(report.Clauses))
	}
	if report.OverallRisk != model.RiskLow {
		t.Errorf("Expected Low risk for empty input, got %s", report.OverallRisk)
	}
	if report.Decision.Verdict != model.VerdictSign {
		t.Errorf("Expected SIGN for empty input, got %s", report.Decision.Verdict)
	}
	if report.Decision.DecisionScore != 0 {
		t.Errorf("Expected score 0, got %d", report.Decision.DecisionScore)
	}
}

func TestAnalyzeFile_RecordsAudit(t *testing.T) {
	dir := t.TempDir()
	contractPath := filepath.Join(dir, "contract.txt")
	if err := os.WriteFile(contractPath, []byte(cleanContract), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	auditPath := filepath.Join(dir, "audit.db")

	cfg := testConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.Path = auditPath
	p := newTestPipeline(t, cfg)

	report, err := p.AnalyzeFile(context.Background(), contractPath)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if report.SourcePath != contractPath {
		t.Errorf("Expected source path recorded, got %q", report.SourcePath)
	}

	log := audit.Open(auditPath)
	defer log.Close()
	entries, err := log.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 audit entry, got %d", len(entries))
	}
	if entries[0].Path != contractPath {
		t.Errorf("Unexpected audit path %q", entries[0].Path)
	}
}

func TestAuditSummary(t *testing.T) {
	report := &model.Report{
		ContractType: "Service Agreement",
		Clauses:      make([]model.Clause, 4),
		OverallRisk:  model.RiskMedium,
		Decision:     model.Decision{Verdict: model.VerdictNegotiate},
	}

	got := auditSummary(report)
	want := "Service Agreement, English, 4 clauses, overall risk Medium, verdict NEGOTIATE"
	if got != want {
		t.Errorf("auditSummary = %q, want %q", got, want)
	}

	report.Language.IsHindi = true
	if got := auditSummary(report); got != "Service Agreement, Hindi, 4 clauses, overall risk Medium, verdict NEGOTIATE" {
		t.Errorf("Unexpected Hindi summary %q", got)
	}
}
