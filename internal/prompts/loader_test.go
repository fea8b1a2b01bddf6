package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_RefinePrompts(t *testing.T) {
	for _, key := range []string{KeyCandidateProfile, KeyExtractionRules, KeyInputBlock} {
		prompt, err := Get(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("cover-letter")
	assert.ErrorContains(t, err, `no refinement prompt "cover-letter"`)

	assert.Panics(t, func() { MustGet("cover-letter") })
	assert.Contains(t, MustGet(KeyCandidateProfile), "CV")
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		data    any
		want    string
		wantErr bool
	}{
		{"struct data", KeyInputBlock, struct{ Text string }{"Jane Smith"}, "Input text:\n\"\"\"\nJane Smith\n\"\"\"\n", false},
		{"map data", KeyInputBlock, map[string]string{"Text": "Go, SQL"}, "Input text:\n\"\"\"\nGo, SQL\n\"\"\"\n", false},
		{"text with braces is not expanded", KeyInputBlock, map[string]string{"Text": "{{.Secret}}"}, "Input text:\n\"\"\"\n{{.Secret}}\n\"\"\"\n", false},
		{"missing field", KeyInputBlock, map[string]string{}, "", true},
		{"unknown key", "cover-letter", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.key, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustRender_Panics(t *testing.T) {
	assert.Panics(t, func() { MustRender(KeyInputBlock, map[string]string{}) })
}
