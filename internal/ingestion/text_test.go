package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizeBulletLists(t *testing.T) {
	input := "- Item 1\n• Item 2\n* Item 3"
	result := CleanText(input)

	assert.Equal(t, "- Item 1\n- Item 2\n- Item 3", result)
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with \t multiple spaces   "
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText(" \n\t\n "))
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		want   string
		wantOK bool
	}{
		{"utf-8 with bom", []byte("\xEF\xBB\xBFJane Smith"), "Jane Smith", true},
		{"latin-1", []byte("Jos\xe9 Garc\xeda"), "José García", true},
		{"windows-1252 quotes", []byte("\x93Go\x94 developer"), "\u201cGo\u201d developer", true},
		{"empty", nil, "", true},
		{"binary", []byte{0x50, 0x4b, 0x00, 0x03}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := decodeText(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}
