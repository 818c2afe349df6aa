// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(message string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintDocumentSummary outputs the contact line and entry counts of a document.
func (p *Printer) PrintDocumentSummary(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", doc.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", doc.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", doc.PersonalInfo.Location))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Work experience: %d\n", len(doc.WorkExperience)))
	count := min(len(doc.WorkExperience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := doc.WorkExperience[i]
		sb.WriteString(fmt.Sprintf("  • %s @ %s\n", exp.Title, exp.Company))
	}
	if len(doc.WorkExperience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.WorkExperience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Skills:          %d\n", len(doc.Skills)))
	if len(doc.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications:  %d\n", len(doc.Certifications)))
	}

	p.printBox("DOCUMENT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResult outputs every field error of a validation result.
func (p *Printer) PrintValidationResult(result validation.Result) {
	if result.Valid {
		p.printBanner("✅ DOCUMENT IS VALID")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d errors:\n\n", len(result.Errors)))
	for i, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("✗ %s [%s]\n", e.Field, e.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", e.Message))
		if i < len(result.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportSummary outputs the files written by an export run.
func (p *Printer) PrintExportSummary(artifacts []export.Artifact) {
	if len(artifacts) == 0 {
		p.printBanner("NO FILES EXPORTED")
		return
	}

	var sb strings.Builder
	total := 0
	for _, a := range artifacts {
		total += a.Bytes
	}
	sb.WriteString(fmt.Sprintf("Exported %d files (%d bytes):\n\n", len(artifacts), total))
	for _, a := range artifacts {
		sb.WriteString(fmt.Sprintf("• %-13s %d bytes\n", a.Style, a.Bytes))
		sb.WriteString(fmt.Sprintf("  %s\n", a.Path))
	}

	p.printBox("EXPORT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any ATS violations found.
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		p.printBanner("✅ NO VIOLATIONS FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		label := v.Type
		if v.Style != "" {
			label = fmt.Sprintf("%s (%s)", v.Type, v.Style)
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", label))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS VIOLATIONS", sb.String())
}
