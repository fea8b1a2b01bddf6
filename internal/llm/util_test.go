package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"full_name\": \"Jane\"}\n```", `{"full_name": "Jane"}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with language", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"fence with trailing text", "```json\n{\"a\": 1}\n```\nHope this helps", `{"a": 1}`},
		{"single-line fence", "```{\"a\": 1}```", `{"a": 1}`},
		{"prose around object", "Sure! Here it is: {\"a\": 1} Let me know.", `{"a": 1}`},
		{"no json at all", "I cannot help with that.", "I cannot help with that."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}
