// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/talentdesk/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintProfile outputs a human-readable summary of a parsed CV.
func (p *Printer) PrintProfile(fileName string, profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", fileName))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.FullName)))
	if profile.IsScanned {
		sb.WriteString("Text could not be extracted; review the original.\n")
		p.printBox("PARSED CV (SCANNED)", strings.TrimSuffix(sb.String(), "\n"))
		return
	}
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(profile.Phone)))
	if profile.YearsOfExperience > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d\n", profile.YearsOfExperience))
	}
	if !profile.SocialLinks.IsEmpty() {
		for _, link := range []string{profile.SocialLinks.GitHub, profile.SocialLinks.LinkedIn, profile.SocialLinks.Portfolio} {
			if link != "" {
				sb.WriteString(fmt.Sprintf("Link:     %s\n", link))
			}
		}
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", profile.Skills)
	writeList(&sb, "Education", profile.Education)
	writeList(&sb, "Experience", profile.Experience)
	writeList(&sb, "Certificates", profile.Certificates)
	if profile.Summary != "" {
		sb.WriteString("Summary:\n  " + profile.Summary + "\n")
	}

	p.printBox("PARSED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCVList outputs one line per imported CV.
func (p *Printer) PrintCVList(title string, cvs []types.ImportedCV) {
	var sb strings.Builder
	if len(cvs) == 0 {
		sb.WriteString("No CVs.")
	}
	for _, cv := range cvs {
		marker := ""
		if cv.IsScanned {
			marker = " [scanned]"
		}
		sb.WriteString(fmt.Sprintf("%-9s %s  %s%s\n", cv.Status, shortID(cv.ID), orDash(cv.FullName), marker))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImportSummary outputs the outcome of a batch import.
func (p *Printer) PrintImportSummary(total, imported int, failed []string, sync string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Files:    %d\n", total))
	sb.WriteString(fmt.Sprintf("Imported: %d\n", imported))
	sb.WriteString(fmt.Sprintf("Saved:    %s\n", sync))
	writeList(&sb, "Failed", failed)
	p.printBox("IMPORT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
