// Package ingest reads contract documents from disk and produces plain
// text for analysis. Extraction never returns an error: failures are
// reported inline as descriptive text so a batch run keeps moving and
// the report shows exactly what went wrong for each file.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// ExtractText reads a contract file and returns its text content. HTML
// files are reduced to visible text; everything else is treated as plain
// text. Undecodable bytes fall back to a latin-1 interpretation.
func ExtractText(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error extracting text from %s: %v", filepath.Base(path), err)
	}
	if len(raw) == 0 {
		return "Empty file detected."
	}

	text := decode(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmlText(text, path)
	default:
		return text
	}
}

// decode returns the bytes as a string, reinterpreting as latin-1 when
// the content is not valid UTF-8. Scanned or legacy contracts often
// arrive in single-byte encodings.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}

func htmlText(content, path string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Sprintf("Error extracting text from %s: %v", filepath.Base(path), err)
	}
	text := visibleText(doc)
	if strings.TrimSpace(text) == "" {
		return "Empty file detected."
	}
	return text
}

// visibleText walks the node tree collecting text nodes, skipping
// non-content tags. Block elements emit newlines so clause numbering
// stays at line starts for the segmenter.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				buf.WriteString("\n")
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// Clean normalizes whitespace before segmentation: collapses blank-line
// runs and trims the edges.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
