package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talentdesk/internal/ingestion"
)

const (
	maxExperienceLen  = 200
	maxSummaryLen     = 300
	maxCertificateLen = 100
)

var (
	yearsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:professional\s+)?experience`),
		regexp.MustCompile(`(?i)experience\s*:?\s*(\d{1,2})\+?\s*(?:years?|yrs?)`),
	}

	degreeRe = regexp.MustCompile(`(?i)(?:^|[^A-Za-z])(` +
		`(?:bachelor|master|associate|doctor)(?:'s|s)?(?:\s+of\s+\w+)?(?:\s+degree)?` +
		`|ph\.?\s?d\.?|mba|b\.\s?s\.?c?\.?|b\.\s?a\.?|m\.\s?s\.?c?\.?|m\.\s?a\.?|bsc|msc|beng|meng` +
		`)\s*(?:,|-|–|in|of)?\s+([A-Za-z][A-Za-z&/ ]{2,80})`)

	experienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^.*\b(?:engineer|developer|manager|analyst|consultant|architect|scientist|designer|administrator|programmer|intern)\b.*$`),
		regexp.MustCompile(`\b[A-Z][A-Za-z&.\- ]{1,60}?\s+(?:at|@)\s+[A-Z][A-Za-z0-9&.,\- ]{1,80}`),
		regexp.MustCompile(`(?i)^.*\b(?:19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:19|20)\d{2}|present|current|now)\b.*$`),
	}

	summaryHeadingRe = regexp.MustCompile(`(?i)^\s*(?:professional\s+|career\s+)?(?:summary|overview|about(?:\s+me)?|profile|objective)\s*(?::\s*(.*))?$`)
	sectionHeadingRe = regexp.MustCompile(`(?i)^\s*(?:work\s+|professional\s+|technical\s+)?(?:education|experience|skills|employment|projects|certifications?)\b`)
	contactLineRe    = regexp.MustCompile(`(?i)^\s*(?:phone|tel|mobile|email|e-mail|address|linkedin|github|website|portfolio)\b`)
	urlInLineRe      = regexp.MustCompile(`(?i)https?://|www\.`)

	certIndicatorRe = regexp.MustCompile(`(?i)\bcertif(?:ied|icates?|ications?)\b|^(?:aws|azure|gcp|google cloud|comptia|cisco|ccna|ccnp|pmp|oracle|microsoft|cka|ckad)\b`)
	certLabelRe     = regexp.MustCompile(`(?i)^(?:certifications?|certificates?|licenses? (?:and|&) certifications)\s*(?::\s*|$)`)
)

// SummaryRules are tried in order.
var SummaryRules = []Rule{
	{Name: "heading", Apply: summaryAfterHeading},
	{Name: "first-paragraph", Apply: summaryFirstParagraph},
}

func extractYears(text string) int {
	for _, re := range yearsRes {
		if m := re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				return n
			}
		}
	}
	return 0
}

func extractEducation(text string) []string {
	var found []string
	for _, line := range lines(text) {
		for _, m := range degreeRe.FindAllStringSubmatchIndex(line, -1) {
			found = append(found, strings.TrimSpace(line[m[2]:m[5]]))
		}
	}
	return unique(found)
}

// extractExperience keeps the first match of each pattern on each line.
func extractExperience(text string) []string {
	var found []string
	for _, line := range lines(text) {
		line = stripBullet(line)
		if line == "" {
			continue
		}
		for _, re := range experienceRes {
			if m := re.FindString(line); m != "" {
				found = append(found, truncate(strings.TrimSpace(m), maxExperienceLen))
			}
		}
	}
	return unique(found)
}

func summaryAfterHeading(text string) (string, bool) {
	all := lines(text)
	for i, line := range all {
		m := summaryHeadingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var parts []string
		if rest := strings.TrimSpace(m[1]); rest != "" {
			parts = append(parts, rest)
		}
		for _, next := range all[i+1:] {
			next = strings.TrimSpace(next)
			if next == "" || sectionHeadingRe.MatchString(next) {
				break
			}
			parts = append(parts, next)
		}
		if len(parts) > 0 {
			return truncate(strings.Join(parts, " "), maxSummaryLen), true
		}
	}
	return "", false
}

func summaryFirstParagraph(text string) (string, bool) {
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		var parts []string
		for _, line := range lines(para) {
			line = strings.TrimSpace(line)
			if line == "" || isContactLine(line) || ingestion.IsSentinel(line) {
				continue
			}
			parts = append(parts, line)
		}
		if len(parts) > 0 {
			return truncate(strings.Join(parts, " "), maxSummaryLen), true
		}
	}
	return "", false
}

func isContactLine(line string) bool {
	return contactLineRe.MatchString(line) ||
		emailRe.MatchString(line) ||
		phoneRe.MatchString(line) ||
		urlInLineRe.MatchString(line)
}

func extractCertificates(text string) []string {
	var found []string
	for _, line := range lines(text) {
		line = stripBullet(line)
		if line == "" || !certIndicatorRe.MatchString(line) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "skills") {
			continue
		}
		cert := strings.TrimSpace(certLabelRe.ReplaceAllString(line, ""))
		if cert == "" {
			continue
		}
		found = append(found, truncate(cert, maxCertificateLen))
	}
	return unique(found)
}
