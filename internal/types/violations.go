// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation types reported by the ATS compliance checker.
const (
	ViolationMissingDoctype   = "missing_doctype"
	ViolationMissingStructure = "missing_structure"
	ViolationMissingTitle     = "missing_title"
	ViolationTableLayout      = "table_layout"
	ViolationImage            = "image"
	ViolationExternalResource = "external_resource"
	ViolationFontFamily       = "font_family"
)

// Violation represents a single machine-readability failure in rendered output
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Style    string `json:"style,omitempty"`   // Style that produced the document, when known
	Element  string `json:"element,omitempty"` // Offending element name
	Count    *int   `json:"count,omitempty"`   // Number of occurrences
}

// Violations represents a collection of compliance failures
type Violations struct {
	Violations []Violation `json:"violations"`
}
