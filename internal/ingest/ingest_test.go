package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestExtractText_PlainText(t *testing.T) {
	path := writeFixture(t, "contract.txt", []byte("1. Payment within 30 days.\n2. Either party may terminate."))
	text := ExtractText(path)

	if !strings.Contains(text, "Payment within 30 days") {
		t.Errorf("Expected clause text, got %q", text)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	text := ExtractText(filepath.Join(t.TempDir(), "missing.txt"))

	if !strings.HasPrefix(text, "Error extracting text from missing.txt:") {
		t.Errorf("Expected inline error message, got %q", text)
	}
}

func TestExtractText_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.txt", nil)

	if text := ExtractText(path); text != "Empty file detected." {
		t.Errorf("Expected empty-file message, got %q", text)
	}
}

func TestExtractText_HTML(t *testing.T) {
	page := `<html><head><style>body { color: red; }</style>
<script>alert("hi");</script></head>
<body>
<h1>Service Agreement</h1>
<p>1. The Vendor shall deliver monthly reports.</p>
<p>2. Payment within 45 days of invoice.</p>
</body></html>`
	path := writeFixture(t, "contract.html", []byte(page))
	text := ExtractText(path)

	if !strings.Contains(text, "Service Agreement") {
		t.Errorf("Expected heading text, got %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color: red") {
		t.Errorf("Script and style content should be skipped, got %q", text)
	}
	// Block elements start new lines so numbered clauses stay at line starts.
	if !strings.Contains(text, "\n1. The Vendor shall deliver monthly reports.") {
		t.Errorf("Expected clause on its own line, got %q", text)
	}
}

func TestExtractText_HTMLWithNoVisibleText(t *testing.T) {
	path := writeFixture(t, "blank.html", []byte("<html><body><script>var x = 1;</script></body></html>"))

	if text := ExtractText(path); text != "Empty file detected." {
		t.Errorf("Expected empty-file message, got %q", text)
	}
}

func TestExtractText_Latin1Fallback(t *testing.T) {
	// 0xA3 is a pound sign in latin-1 and invalid as standalone UTF-8.
	path := writeFixture(t, "legacy.txt", []byte{'F', 'e', 'e', ' ', 0xA3, '5', '0', '0'})
	text := ExtractText(path)

	if !strings.Contains(text, "£500") {
		t.Errorf("Expected latin-1 reinterpretation, got %q", text)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf normalized", "a\r\nb", "a\nb"},
		{"blank runs collapsed", "1. First clause.\n\n\n2. Second clause.", "1. First clause.\n2. Second clause."},
		{"whitespace-only lines collapsed", "a\n   \t\nb", "a\nb"},
		{"edges trimmed", "  \n  text  \n  ", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
