package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/talentdesk/internal/types"
)

var (
	githubURLRe     = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[A-Za-z0-9-]+`)
	githubBareRe    = regexp.MustCompile(`(?i)\bgithub\.com/([A-Za-z0-9-]+)`)
	githubMentionRe = regexp.MustCompile(`(?i)\bgithub\s*:?\s+@?([A-Za-z0-9-]+)`)

	linkedinURLRe     = regexp.MustCompile(`(?i)https?://(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	linkedinBareRe    = regexp.MustCompile(`(?i)\blinkedin\.com/in/([A-Za-z0-9_-]+)`)
	linkedinMentionRe = regexp.MustCompile(`(?i)\blinkedin\s*:?\s+@?([A-Za-z0-9_-]+)`)

	anyURLRe = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"'()\[\]]+`)

	projectURLRe = regexp.MustCompile(`(?i)(?:https?://)?gist\.github\.com/[A-Za-z0-9_.-]+(?:/[A-Za-z0-9]+)?` +
		`|(?:https?://)?(?:www\.)?(?:github\.com|gitlab\.com|bitbucket\.org)/[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+`)
)

// Words that follow "github" or "linkedin" in prose without being handles.
var handleStopWords = wordSet(
	"profile", "url", "link", "com", "http", "https", "www", "actions", "pages",
	"copilot", "ci", "page", "and", "or",
)

func extractSocialLinks(text string) types.SocialLinks {
	return types.SocialLinks{
		GitHub:    profileLink(text, githubURLRe, githubBareRe, githubMentionRe, "https://github.com/"),
		LinkedIn:  profileLink(text, linkedinURLRe, linkedinBareRe, linkedinMentionRe, "https://www.linkedin.com/in/"),
		Portfolio: portfolioLink(text),
	}
}

// profileLink prefers a full URL as written, then normalizes a bare domain
// path or a "site handle" mention onto base.
func profileLink(text string, full, bare, mention *regexp.Regexp, base string) string {
	if url := full.FindString(text); url != "" {
		return url
	}
	for _, re := range []*regexp.Regexp{bare, mention} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if handle := m[1]; !handleStopWords[strings.ToLower(handle)] {
				return base + handle
			}
		}
	}
	return ""
}

func portfolioLink(text string) string {
	for _, url := range anyURLRe.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "github.com") || strings.Contains(lower, "linkedin.com") {
			continue
		}
		return strings.TrimRight(url, ".,;:")
	}
	return ""
}

func extractProjectLinks(text string) []string {
	var found []string
	for _, url := range projectURLRe.FindAllString(text, -1) {
		found = append(found, strings.TrimRight(url, ".,;:"))
	}
	return unique(found)
}
