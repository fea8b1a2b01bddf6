// Package prompts holds the instructions sent to the language model when it
// fills fields the CV heuristics left empty.
package prompts

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"text/template"
)

// Keys in refine.json.
const (
	KeyCandidateProfile = "candidate-profile"
	KeyExtractionRules  = "extraction-rules"
	KeyInputBlock       = "input-block"
)

//go:embed refine.json
var refineJSON []byte

var refinePrompts = sync.OnceValues(func() (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal(refineJSON, &m); err != nil {
		return nil, fmt.Errorf("refine.json: %w", err)
	}
	return m, nil
})

// Get returns the refinement prompt stored under key.
func Get(key string) (string, error) {
	m, err := refinePrompts()
	if err != nil {
		return "", err
	}
	p, ok := m[key]
	if !ok {
		return "", fmt.Errorf("no refinement prompt %q", key)
	}
	return p, nil
}

// MustGet is Get for keys compiled into the binary.
func MustGet(key string) string {
	p, err := Get(key)
	if err != nil {
		panic(err)
	}
	return p
}

// Render executes the prompt under key as a text/template with data.
// Referencing a field data lacks is an error.
func Render(key string, data any) (string, error) {
	p, err := Get(key)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(key).Option("missingkey=error").Parse(p)
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", key, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("prompt %q: %w", key, err)
	}
	return buf.String(), nil
}

// MustRender is Render for prompts compiled into the binary.
func MustRender(key string, data any) string {
	s, err := Render(key, data)
	if err != nil {
		panic(err)
	}
	return s
}
