package parsing

import "strings"

// Rule is one named heuristic in an ordered extraction chain. Apply reports
// false when the rule does not recognize anything in the text.
type Rule struct {
	Name  string
	Apply func(text string) (string, bool)
}

// FirstMatch runs rules in order and returns the first non-empty value along
// with the name of the rule that produced it. Both are empty when no rule matches.
func FirstMatch(rules []Rule, text string) (value, rule string) {
	for _, r := range rules {
		v, ok := r.Apply(text)
		if !ok {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, r.Name
		}
	}
	return "", ""
}

// truncate caps s at max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max]))
}

// unique drops blanks and exact duplicates, keeping first-seen order.
func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func firstNonEmptyLine(text string) string {
	for _, line := range lines(text) {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// stripBullet removes a leading list marker from a line.
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"- ", "• ", "* ", "· ", "▪ "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}
	return line
}
