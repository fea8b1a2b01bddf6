package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_WordBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{
			name:    "suffix breaks the match",
			text:    "Wrote JavaScriptish prototypes",
			notWant: []string{"JavaScript", "Java"},
		},
		{
			name:    "special characters are escaped",
			text:    "Senior C++ developer",
			want:    []string{"C++"},
			notWant: []string{"C#"},
		},
		{
			name: "dotted terms",
			text: "Built APIs on .NET and Node.js",
			want: []string{"Node.js", ".NET"},
		},
		{
			name:    "case-insensitive",
			text:    "python, REACT and postgresql",
			want:    []string{"Python", "React", "PostgreSQL"},
			notWant: []string{"SQL"},
		},
		{
			name:    "prefix words do not match",
			text:    "Worked with GitHub daily",
			notWant: []string{"Git"},
		},
		{
			name:    "multi-word terms",
			text:    "Experience in machine learning and CI/CD pipelines",
			want:    []string{"CI/CD", "Machine Learning"},
			notWant: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, got, nw)
			}
		})
	}
}

func TestMatch_VocabularyOrder(t *testing.T) {
	got := Match("React first, then Docker, then Python")
	assert.Equal(t, []string{"Python", "React", "Docker"}, got)
}

func TestMatch_EmptyText(t *testing.T) {
	assert.Empty(t, Match(""))
	assert.NotNil(t, Match("   "))
}

func TestNewMatcher_Deduplicates(t *testing.T) {
	m := NewMatcher([]string{"Go", "go", " ", "Rust"})
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"Go", "Rust"}, m.Match("rust and GO"))
}

func TestVocabularySize(t *testing.T) {
	assert.GreaterOrEqual(t, defaultMatcher.Len(), 80)
}
