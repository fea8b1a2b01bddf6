package ingestion

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	inlineSpaceRe     = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	excessBlankLineRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while keeping the line
// structure the field heuristics rely on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 3. Collapse runs of blank lines (max 2 consecutive newlines)
	result := strings.Join(cleanedLines, "\n")
	result = excessBlankLineRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses inner whitespace. Bullet markers are
// normalized to "- " so list items stay recognizable.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(inlineSpaceRe.ReplaceAllString(line, " "))
	if trimmed == "" {
		return ""
	}
	if isBulletLine(trimmed) {
		_, rest, _ := strings.Cut(trimmed, " ")
		return "- " + strings.TrimSpace(rest)
	}
	return trimmed
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ") ||
		strings.HasPrefix(line, "▪ ")
}

// decodeText reads a plain-text upload. Bytes that are not valid UTF-8 are
// decoded as Windows-1252, which covers Latin-1 CVs. Content holding NUL bytes
// is binary and reported as unreadable. An empty file decodes to "".
func decodeText(data []byte) (string, bool) {
	data = trimBOM(data)
	if bytes.IndexByte(data, 0) >= 0 {
		return "", false
	}
	if utf8.Valid(data) {
		return string(data), true
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD"), true
	}
	return string(text), true
}

func trimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
