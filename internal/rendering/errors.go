// Package rendering renders resume documents into standalone, ATS-compliant HTML.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing the HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Style   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Style != "" {
		prefix = fmt.Sprintf("render error (%s)", e.Style)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// UnknownStyleError is returned when a style name is not registered
type UnknownStyleError struct {
	Name      string
	Available []string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q (available: %v)", e.Name, e.Available)
}
