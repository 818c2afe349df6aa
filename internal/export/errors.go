// Package export turns a validated document into HTML or PDF files named by the
// filename generator and written through a storage.FileStore.
package export

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/validation"
)

// Export stages reported by ExportError.
const (
	StageRender = "render"
	StageATS    = "ats"
	StagePDF    = "pdf"
	StageWrite  = "write"
)

// ExportError represents a failure in one of the export collaborators
type ExportError struct {
	Stage string
	Style string
	Path  string
	Cause error
}

func (e *ExportError) Error() string {
	msg := "export error (" + e.Stage
	if e.Style != "" {
		msg += ", " + e.Style
	}
	msg += ")"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// InvalidDocumentError is returned when export is refused because the document
// fails validation. Result carries every field error.
type InvalidDocumentError struct {
	Result validation.Result
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("document is invalid (%d errors)", len(e.Result.Errors))
}
