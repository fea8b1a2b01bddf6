// Package skills detects known technology terms in CV text.
package skills

import (
	"regexp"
	"strings"
)

// Vocabulary is the fixed list of recognized skills. Match results follow this order.
var Vocabulary = []string{
	// Languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	"Swift", "Kotlin", "Scala", "Perl", "SQL", "HTML", "CSS", "Bash", "Dart", "Elixir",

	// Frameworks and libraries
	"React", "React Native", "Angular", "Vue", "Next.js", "Node.js", "Express", "Django",
	"Flask", "FastAPI", "Spring", "Spring Boot", "Rails", "Laravel", ".NET", "ASP.NET",
	"jQuery", "Bootstrap", "Tailwind", "Redux", "GraphQL", "Flutter",

	// Databases
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Oracle", "Elasticsearch",
	"Cassandra", "DynamoDB", "Firebase", "SQL Server", "MariaDB",

	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git",
	"GitHub Actions", "GitLab CI", "CI/CD", "Linux", "Nginx", "Kafka", "RabbitMQ",

	// Data and ML
	"TensorFlow", "PyTorch", "Pandas", "NumPy", "Scikit-learn", "Machine Learning",
	"Deep Learning", "NLP", "Spark", "Hadoop", "Tableau", "Power BI", "Excel",

	// Practices and tooling
	"Agile", "Scrum", "REST", "Microservices", "Figma", "Jira",
}

// Word characters on either side of a term break the match. A trailing
// '+' or '#' also breaks it so "C" style prefixes never match "C++".
const (
	leadBoundary  = `(?:^|[^A-Za-z0-9_])`
	trailBoundary = `(?:$|[^A-Za-z0-9_+#])`
)

type term struct {
	name string
	re   *regexp.Regexp
}

// Matcher finds vocabulary terms in text.
type Matcher struct {
	terms []term
}

// NewMatcher compiles one case-insensitive pattern per term. Terms that repeat
// (ignoring case) are kept once, at their first position.
func NewMatcher(vocabulary []string) *Matcher {
	seen := make(map[string]bool, len(vocabulary))
	m := &Matcher{terms: make([]term, 0, len(vocabulary))}
	for _, name := range vocabulary {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		m.terms = append(m.terms, term{name: name, re: regexp.MustCompile(pattern(name))})
	}
	return m
}

// pattern escapes the term before wrapping it in boundaries.
func pattern(name string) string {
	return `(?i)` + leadBoundary + regexp.QuoteMeta(name) + trailBoundary
}

// Match returns the terms found in text, in vocabulary order.
func (m *Matcher) Match(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}
	for _, t := range m.terms {
		if t.re.MatchString(text) {
			found = append(found, t.name)
		}
	}
	return found
}

// Len returns the number of terms in the vocabulary.
func (m *Matcher) Len() int {
	return len(m.terms)
}

var defaultMatcher = NewMatcher(Vocabulary)

// Match finds Vocabulary terms in text.
func Match(text string) []string {
	return defaultMatcher.Match(text)
}
