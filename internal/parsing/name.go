package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/talentdesk/internal/ingestion"
)

// NameRules are tried in order. The file name is the fallback when none match.
var NameRules = []Rule{
	{Name: "first-line", Apply: nameFromFirstLine},
	{Name: "before-job-title", Apply: nameBeforeJobTitle},
	{Name: "before-contact-label", Apply: nameBeforeContactLabel},
	{Name: "before-blank-line", Apply: nameBeforeBlankLine},
	{Name: "line-start", Apply: nameAtLineStart},
}

const titleAlternation = `senior|junior|lead|principal|staff|software|backend|frontend|full[- ]stack|data|devops|engineer|developer|manager|designer|analyst|consultant|architect|scientist|programmer|administrator|specialist|director|intern`

var (
	nameWordRe = regexp.MustCompile(`^[A-Z][A-Za-z'\-]*[A-Za-z]$`)

	beforeTitleRe = regexp.MustCompile(
		`\b([A-Z][a-z]+(?:-[A-Z][a-z]+)?)\s+([A-Z][a-z]+(?:-[A-Z][a-z]+)?)\s*[,|\-–]?\s+(?i:` + titleAlternation + `)\b`)
	beforeContactRe = regexp.MustCompile(
		`(?m)^[ \t]*([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,2})[ \t]*\n[ \t]*(?i:phone|email|e-mail|tel|mobile|address|contact)\b`)
	beforeBlankRe = regexp.MustCompile(
		`(?m)^[ \t]*([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,2})[ \t]*\n[ \t]*\n`)
	lineStartRe = regexp.MustCompile(`(?m)^[ \t]*([A-Z][a-z]+[ \t]+[A-Z][a-z]+)\b`)
)

var titleWords = wordSet(
	"senior", "junior", "lead", "principal", "staff", "software", "backend", "frontend",
	"full", "stack", "full-stack", "data", "devops", "engineer", "developer", "manager",
	"designer", "analyst", "consultant", "architect", "scientist", "programmer",
	"administrator", "specialist", "director", "intern", "product", "project", "web", "mobile",
)

// Words that show up capitalized at the top of CVs but are never part of a name.
var nonNameWords = wordSet(
	"experience", "education", "skills", "summary", "profile", "professional", "work",
	"curriculum", "vitae", "resume", "cv", "objective", "contact", "projects",
	"certifications", "certificates", "about", "technical", "personal", "references",
	"languages", "phone", "email", "address", "employment", "history", "career", "page",
	"linkedin", "github", "portfolio", "overview",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// plausibleName accepts two to four capitalized words with no heading or title words.
func plausibleName(words []string) bool {
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		lw := strings.ToLower(w)
		if !nameWordRe.MatchString(w) || titleWords[lw] || nonNameWords[lw] {
			return false
		}
	}
	return true
}

func nameFromFirstLine(text string) (string, bool) {
	var words []string
	for _, w := range strings.Fields(firstNonEmptyLine(text)) {
		w = strings.TrimRight(w, ",|")
		lw := strings.ToLower(w)
		if !nameWordRe.MatchString(w) || titleWords[lw] || nonNameWords[lw] {
			break
		}
		words = append(words, w)
		if len(words) == 4 {
			break
		}
	}
	if !plausibleName(words) {
		return "", false
	}
	return strings.Join(words, " "), true
}

func nameBeforeJobTitle(text string) (string, bool) {
	for _, m := range beforeTitleRe.FindAllStringSubmatch(text, -1) {
		words := []string{m[1], m[2]}
		if plausibleName(words) {
			return strings.Join(words, " "), true
		}
	}
	return "", false
}

func nameBeforeContactLabel(text string) (string, bool) {
	return firstPlausible(beforeContactRe, text)
}

func nameBeforeBlankLine(text string) (string, bool) {
	return firstPlausible(beforeBlankRe, text)
}

func nameAtLineStart(text string) (string, bool) {
	return firstPlausible(lineStartRe, text)
}

func firstPlausible(re *regexp.Regexp, text string) (string, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		words := strings.Fields(m[1])
		if plausibleName(words) {
			return strings.Join(words, " "), true
		}
	}
	return "", false
}

// extractName applies NameRules and falls back to the file name.
func extractName(text, fileName string) string {
	if name, _ := FirstMatch(NameRules, text); name != "" {
		return name
	}
	return ingestion.NameFromFilename(fileName)
}
