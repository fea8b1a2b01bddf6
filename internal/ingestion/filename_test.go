package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"Jane-Doe-Resume.pdf", "Jane Doe"},
		{"john_smith_CV.docx", "john smith"},
		{"Maria.Garcia-cv.txt", "Maria Garcia"},
		{"Alex Kim_RESUME.pdf", "Alex Kim"},
		{"uploads/Sam-Lee.pdf", "Sam Lee"},
		{"Resume.pdf", "Resume"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, NameFromFilename(tt.fileName))
		})
	}
}
