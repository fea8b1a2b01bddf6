package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// maxPDFPages caps how many pages are read from a PDF.
const maxPDFPages = 10

// extractPDF reads the first pages of a PDF. Whitespace runs inside each line
// are collapsed and pages are separated by a newline. An empty result with a
// nil error means no page carried extractable text.
func extractPDF(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	total := r.NumPage()
	pages := make([]string, 0, min(total, maxPDFPages))
	for i := 1; i <= total && i <= maxPDFPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		raw, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text := joinRuns(raw); text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n"), total, nil
}

// joinRuns collapses whitespace within each line and drops empty lines.
func joinRuns(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if joined := strings.Join(strings.Fields(line), " "); joined != "" {
			kept = append(kept, joined)
		}
	}
	return strings.Join(kept, "\n")
}
