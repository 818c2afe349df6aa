package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewDocument()
	doc.PersonalInfo = types.PersonalInfo{Name: "Jane Doe", Email: "jane@x.com", Location: "Berlin"}
	doc.WorkExperience = []types.WorkExperience{{Company: "Acme Corp", Title: "Engineer"}}
	doc.Skills = []types.Skill{{Name: "Go"}, {Name: "SQL"}}
	doc.Certifications = []string{"CKA"}

	p.PrintDocumentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT SUMMARY")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Engineer @ Acme Corp")
	assert.Contains(t, output, "Skills:          2")
	assert.Contains(t, output, "Certifications:  1")
}

func TestPrintDocumentSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocumentSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDocumentSummary_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewDocument()
	for i := 0; i < 7; i++ {
		doc.WorkExperience = append(doc.WorkExperience, types.WorkExperience{Company: "Acme", Title: "Engineer"})
	}

	p.PrintDocumentSummary(doc)
	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintValidationResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationResult(validation.Result{
		Valid: false,
		Errors: []validation.FieldError{
			{Field: "personalInfo.email", Message: "Email is required", Type: validation.ErrorRequired},
			{Field: "workExperience[0].endDate", Message: "End date must be after start date", Type: validation.ErrorRange},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "VALIDATION ERRORS")
	assert.Contains(t, output, "Found 2 errors")
	assert.Contains(t, output, "personalInfo.email [required]")
	assert.Contains(t, output, "workExperience[0].endDate [range]")
}

func TestPrintValidationResult_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationResult(validation.Result{Valid: true, Errors: []validation.FieldError{}})

	assert.Contains(t, buf.String(), "DOCUMENT IS VALID")
}

func TestPrintExportSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportSummary([]export.Artifact{
		{Style: "classic", Path: "out/jane_doe_classic_2024-05-17.html", Bytes: 1200},
		{Style: "modern", Path: "out/jane_doe_modern_2024-05-17.html", Bytes: 1300},
	})
	output := buf.String()

	assert.Contains(t, output, "EXPORT SUMMARY")
	assert.Contains(t, output, "Exported 2 files (2500 bytes)")
	assert.Contains(t, output, "out/jane_doe_modern_2024-05-17.html")
}

func TestPrintExportSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportSummary(nil)

	assert.Contains(t, buf.String(), "NO FILES EXPORTED")
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	violations := &types.Violations{
		Violations: []types.Violation{
			{
				Type:     types.ViolationTableLayout,
				Severity: "error",
				Details:  "table layout elements present",
				Style:    "classic",
			},
			{
				Type:     types.ViolationFontFamily,
				Severity: "error",
				Details:  strings.Repeat("very long details ", 10),
			},
		},
	}

	p.PrintViolations(violations)
	output := buf.String()

	assert.Contains(t, output, "ATS VIOLATIONS")
	assert.Contains(t, output, "Found 2 violations")
	assert.Contains(t, output, "table_layout (classic)")
	assert.Contains(t, output, "...")
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintBox_LongLinesTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}
