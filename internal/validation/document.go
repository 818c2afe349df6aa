package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ErrorType classifies a field error.
type ErrorType string

// Field error kinds.
const (
	ErrorRequired ErrorType = "required"
	ErrorFormat   ErrorType = "format"
	ErrorRange    ErrorType = "range"
)

// FieldError is a single business-rule failure addressed to one field.
// Field uses dotted paths with indexes, e.g. workExperience[1].company.
type FieldError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Type    ErrorType `json:"type"`
}

// Result is the outcome of validating a document. Errors are in check order.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// HasError reports whether the result contains an error for field of the given type.
func (r Result) HasError(field string, typ ErrorType) bool {
	for _, e := range r.Errors {
		if e.Field == field && e.Type == typ {
			return true
		}
	}
	return false
}

// String renders the error list one per line.
func (r Result) String() string {
	if r.Valid {
		return "valid"
	}
	var sb strings.Builder
	for i, e := range r.Errors {
		sb.WriteString(fmt.Sprintf("%d. %s: %s (%s)\n", i+1, e.Field, e.Message, e.Type))
	}
	return sb.String()
}

// ValidateDocument checks every business rule and accumulates all failures.
// It never fails: an invalid document is reported through the result.
func ValidateDocument(doc *types.Document) Result {
	if doc == nil {
		doc = types.NewDocument()
	}

	errs := make([]FieldError, 0)
	add := func(field, message string, typ ErrorType) {
		errs = append(errs, FieldError{Field: field, Message: message, Type: typ})
	}

	info := doc.PersonalInfo
	requiredInfo := []struct {
		field string
		label string
		value string
	}{
		{"name", "Name", info.Name},
		{"email", "Email", info.Email},
		{"phone", "Phone", info.Phone},
		{"location", "Location", info.Location},
	}
	for _, f := range requiredInfo {
		if isBlank(f.value) {
			add("personalInfo."+f.field, f.label+" is required", ErrorRequired)
		}
	}

	if !isBlank(info.Email) && !ValidateEmail(strings.TrimSpace(info.Email)) {
		add("personalInfo.email", "Invalid email format", ErrorFormat)
	}

	if !doc.HasEntries() {
		add("workExperience", "At least one work experience or education entry is required", ErrorRequired)
	}

	for i, exp := range doc.WorkExperience {
		prefix := fmt.Sprintf("workExperience[%d]", i)
		if isBlank(exp.Company) {
			add(prefix+".company", "Company is required", ErrorRequired)
		}
		if isBlank(exp.Title) {
			add(prefix+".title", "Job title is required", ErrorRequired)
		}
		if !ValidateDateRange(exp.StartDate, exp.EndDate) {
			add(prefix+".endDate", "End date must be after start date", ErrorRange)
		}
	}

	for i, edu := range doc.Education {
		prefix := fmt.Sprintf("education[%d]", i)
		if isBlank(edu.Institution) {
			add(prefix+".institution", "Institution is required", ErrorRequired)
		}
		if isBlank(edu.Degree) {
			add(prefix+".degree", "Degree is required", ErrorRequired)
		}
		switch {
		case strings.TrimSpace(edu.EndDate) == types.Present:
			add(prefix+".endDate", "Education end date must be a YYYY-MM month", ErrorRange)
		case !ValidateDateRange(edu.StartDate, edu.EndDate):
			add(prefix+".endDate", "End date must be after start date", ErrorRange)
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
