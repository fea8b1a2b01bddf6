package ingestion

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	cvSuffixRe   = regexp.MustCompile(`(?i)[-_](cv|resume)$`)
	separatorsRe = regexp.MustCompile(`[-_.\s]+`)
)

// NameFromFilename derives a candidate name from an upload name:
// "Jane-Doe-Resume.pdf" becomes "Jane Doe".
func NameFromFilename(fileName string) string {
	base := filepath.Base(strings.TrimSpace(fileName))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = cvSuffixRe.ReplaceAllString(base, "")
	base = separatorsRe.ReplaceAllString(base, " ")
	return strings.TrimSpace(base)
}
