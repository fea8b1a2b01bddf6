package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talentdesk/internal/ingestion"
)

const fullCV = `Maria Garcia
Senior Software Engineer
maria.garcia@example.com | +1 (415) 555-0134
https://github.com/mgarcia | linkedin.com/in/maria-garcia | https://mariagarcia.dev

Professional Summary
Backend engineer with 8 years of professional experience building distributed systems in Go and Python.
Passionate about developer tooling.

Experience
Staff Engineer at Acme Corp, 2019 - Present
- Led migration to Kubernetes

Education
B.S. in Computer Science, Stanford University

Certifications
- AWS Certified Solutions Architect
- Certified Kubernetes Administrator (CKA)

Projects
https://github.com/mgarcia/queue-runner
https://gitlab.com/mgarcia/dotfiles`

func TestExtractFields_PlainTextScenario(t *testing.T) {
	text := "Jane Smith\njane.smith@co.com\n555-123-4567\n3 years experience\nSkills: Python, React"

	profile := ExtractFields(text, "jane.txt")

	assert.Equal(t, "Jane Smith", profile.FullName)
	assert.Equal(t, "jane.smith@co.com", profile.Email)
	assert.Equal(t, "555-123-4567", profile.Phone)
	assert.Equal(t, 3, profile.YearsOfExperience)
	assert.ElementsMatch(t, []string{"Python", "React"}, profile.Skills)
	assert.False(t, profile.IsScanned)
	assert.Equal(t, text, profile.RawText)
}

func TestExtractFields_SentinelFallsBackToFileName(t *testing.T) {
	profile := ExtractFields("[PDF_ERROR] resume_jane_doe.pdf - Error: x", "Jane-Doe-Resume.pdf")

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.True(t, profile.IsScanned)
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Summary)
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.YearsOfExperience)
}

func TestExtractFields_FullCV(t *testing.T) {
	profile := ExtractFields(fullCV, "maria.pdf")

	assert.Equal(t, "Maria Garcia", profile.FullName)
	assert.Equal(t, "maria.garcia@example.com", profile.Email)
	assert.Equal(t, "+1 (415) 555-0134", profile.Phone)
	assert.Equal(t, 8, profile.YearsOfExperience)
	assert.Subset(t, profile.Skills, []string{"Python", "Go", "AWS", "Kubernetes"})
	assert.Equal(t, []string{"B.S. in Computer Science"}, profile.Education)
	assert.Contains(t, profile.Experience, "Senior Software Engineer")
	assert.Contains(t, profile.Experience, "Staff Engineer at Acme Corp, 2019 - Present")
	assert.Equal(t,
		"Backend engineer with 8 years of professional experience building distributed systems in Go and Python. Passionate about developer tooling.",
		profile.Summary)
	assert.Equal(t, "https://github.com/mgarcia", profile.SocialLinks.GitHub)
	assert.Equal(t, "https://www.linkedin.com/in/maria-garcia", profile.SocialLinks.LinkedIn)
	assert.Equal(t, "https://mariagarcia.dev", profile.SocialLinks.Portfolio)
	assert.Equal(t, []string{
		"https://github.com/mgarcia/queue-runner",
		"https://gitlab.com/mgarcia/dotfiles",
	}, profile.ProjectLinks)
	assert.Equal(t, []string{
		"AWS Certified Solutions Architect",
		"Certified Kubernetes Administrator (CKA)",
	}, profile.Certificates)
	assert.False(t, profile.IsScanned)
}

func TestExtractFields_Deterministic(t *testing.T) {
	assert.Equal(t, ExtractFields(fullCV, "maria.pdf"), ExtractFields(fullCV, "maria.pdf"))
}

func TestExtractFields_EmptyText(t *testing.T) {
	profile := ExtractFields("", "Sam-Lee-CV.docx")

	assert.Equal(t, "Sam Lee", profile.FullName)
	assert.False(t, profile.IsScanned)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Summary)
}

func TestFromResult(t *testing.T) {
	failed := ingestion.Result{FileName: "Ann-Lee-CV.pdf", Failure: ingestion.FailureScannedPDF}
	profile := FromResult(failed)
	assert.True(t, profile.IsScanned)
	assert.Equal(t, "Ann Lee", profile.FullName)
	assert.Equal(t, "[SCANNED_PDF] Filename: Ann-Lee-CV.pdf", profile.RawText)

	ok := ingestion.Result{FileName: "cv.txt", Text: "Jane Smith\njane@example.com"}
	profile = FromResult(ok)
	assert.False(t, profile.IsScanned)
	assert.Equal(t, "Jane Smith", profile.FullName)
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"call 555-123-4567 now", "555-123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"+1 555.123.4567", "+1 555.123.4567"},
		{"555 123 4567", "555 123 4567"},
		{"5551234567", "5551234567"},
		{"+1 5551234567", "+1 5551234567"},
		{"555-1234567", "555-1234567"},
		{"ext 12345", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, phoneRe.FindString(tt.text))
		})
	}
}
