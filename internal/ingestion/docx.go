package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/PuerkitoBio/goquery"
)

// minDOCXText is the raw-text length below which the document markup is
// also read to recover text the raw converter missed.
const minDOCXText = 500

const documentPart = "word/document.xml"

// extractDOCX returns the raw text of a DOCX document, supplemented with the
// tag-stripped markup when the raw text is implausibly short.
func extractDOCX(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to convert docx: %w", err)
	}
	text = strings.TrimSpace(text)

	if utf8.RuneCountInString(text) < minDOCXText {
		markup, err := documentMarkupText(data)
		if err == nil && markup != "" {
			text = strings.TrimSpace(text + "\n\n" + markup)
		}
	}
	return text, nil
}

// documentMarkupText strips the tags of word/document.xml, keeping one line
// per paragraph.
func documentMarkupText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}

	var xml []byte
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", documentPart, err)
		}
		xml, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", documentPart, err)
		}
		break
	}
	if len(xml) == 0 {
		return "", fmt.Errorf("no %s found in docx", documentPart)
	}

	markup := strings.NewReplacer("</w:p>", "</w:p>\n", "<w:tab/>", "\t", "<w:br/>", "\n").Replace(string(xml))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx markup: %w", err)
	}
	return strings.TrimSpace(doc.Text()), nil
}
