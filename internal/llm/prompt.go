package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/talentdesk/internal/prompts"
)

// ExtractionSchema describes the JSON object a prompt asks the model to return.
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// SchemaField is one key of the expected JSON object.
type SchemaField struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// BuildExtractionPrompt renders schema followed by the input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		fmt.Fprintf(&sb, "  %q: %s", field.Name, typeHint)
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString(prompts.MustGet(prompts.KeyExtractionRules))
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustRender(prompts.KeyInputBlock, struct{ Text string }{inputText}))

	return sb.String()
}

// CandidateProfileSchema asks for the CV fields that pattern matching misses most often.
func CandidateProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "CandidateProfile",
		Description: prompts.MustGet(prompts.KeyCandidateProfile),
		Fields: []SchemaField{
			{Name: "full_name", Description: "the candidate's name as written at the top of the CV"},
			{Name: "email", Description: "primary email address"},
			{Name: "phone", Description: "primary phone number"},
			{Name: "skills", Type: `["string"]`, Description: "technologies, languages and tools"},
			{Name: "years_of_experience", Type: "number", Description: "total professional years, 0 if not stated"},
			{Name: "education", Type: `["string"]`, Description: "degree and discipline, one entry per degree"},
			{Name: "summary", Description: "the candidate's own summary or objective, verbatim"},
		},
	}
}
