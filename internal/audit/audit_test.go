package audit

import (
	"path/filepath"
	"testing"
)

func TestLogAnalysisAndRecent(t *testing.T) {
	logger := Open(filepath.Join(t.TempDir(), "audit.db"))
	defer logger.Close()

	logger.LogAnalysis("contract-a.txt", "Service Agreement, English, 5 clauses, overall risk Low, verdict SIGN")
	logger.LogAnalysis("contract-b.txt", "Vendor Contract, English, 12 clauses, overall risk High, verdict REJECT")

	entries, err := logger.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Path != "contract-b.txt" {
		t.Errorf("Expected newest entry first, got %s", entries[0].Path)
	}
	if entries[1].Summary == "" {
		t.Error("Expected summary recorded")
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("Expected creation timestamp recorded")
	}
}

func TestRecent_Limit(t *testing.T) {
	logger := Open(filepath.Join(t.TempDir(), "audit.db"))
	defer logger.Close()

	for i := 0; i < 5; i++ {
		logger.LogAnalysis("contract.txt", "summary")
	}

	entries, err := logger.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected limit of 3 entries, got %d", len(entries))
	}
}

func TestDisabledLogger(t *testing.T) {
	logger := Disabled()
	logger.LogAnalysis("contract.txt", "summary")

	entries, err := logger.Recent(10)
	if err != nil {
		t.Errorf("Disabled logger should not error: %v", err)
	}
	if entries != nil {
		t.Errorf("Disabled logger should record nothing, got %d entries", len(entries))
	}

	var nilLogger *Logger
	nilLogger.LogAnalysis("contract.txt", "summary")
	nilLogger.Close()
}

func TestOpen_ReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	first := Open(path)
	first.LogAnalysis("contract.txt", "summary")
	first.Close()

	second := Open(path)
	defer second.Close()

	entries, err := second.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected entry to survive reopen, got %d", len(entries))
	}
}
