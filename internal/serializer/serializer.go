// Package serializer converts resume documents to and from their JSON interchange form.
//
// Decoding is the trust boundary: text is parsed, checked against the structural
// schema and only then converted into a canonical types.Document. Business rules
// (email shape, date ordering) are deliberately not re-checked here; callers run
// validation.ValidateDocument before exporting.
package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const indent = "  "

// SerializationError reports malformed or schema-violating interchange text.
// Path is the offending field (e.g. "skills[2].category"); empty when the text
// could not be parsed at all.
type SerializationError struct {
	Path    string
	Message string
	Details []string
	Cause   error
}

func (e *SerializationError) Error() string {
	msg := "serialization error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// Serialize renders doc as pretty-printed JSON. The output is byte-stable for a
// given document and ends with a newline.
func Serialize(doc *types.Document) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode writes the serialized form of doc to w.
func Encode(w io.Writer, doc *types.Document) error {
	if doc == nil {
		return &SerializationError{Message: "document is nil"}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc.Clone()); err != nil {
		return &SerializationError{Message: "failed to encode document", Cause: err}
	}
	return nil
}

// Deserialize parses text, enforces the structural schema and returns the
// canonical document. Any violation is returned as a *SerializationError.
func Deserialize(text string) (*types.Document, error) {
	return Decode(strings.NewReader(text))
}

// Decode reads a serialized document from r.
func Decode(r io.Reader) (*types.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &SerializationError{Message: "failed to read document", Cause: err}
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SerializationError{Message: "document is not valid JSON", Cause: err}
	}

	if err := schemas.ValidateDocumentValue(raw); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) && len(validationErr.Errors) > 0 {
			details := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				details = append(details, fe.Field+": "+fe.Message)
			}
			first := validationErr.Errors[0]
			return nil, &SerializationError{
				Path:    first.Field,
				Message: first.Message,
				Details: details,
			}
		}
		return nil, &SerializationError{Message: "schema check failed", Cause: err}
	}

	// encoding/json matches struct fields case-insensitively, so a key such as
	// "Skills" would bypass the schema and overwrite the checked "skills".
	if path, declared, ok := findCaseVariant(raw); ok {
		msg := fmt.Sprintf("property name differs only in case from %q", declared)
		return nil, &SerializationError{
			Path:    path,
			Message: msg,
			Details: []string{path + ": " + msg},
		}
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SerializationError{Message: "document does not match the resume shape", Cause: err}
	}

	return doc.Clone(), nil
}

var (
	documentKeys       = []string{"personalInfo", "summary", "workExperience", "education", "skills", "certifications"}
	personalInfoKeys   = []string{"name", "email", "phone", "location", "linkedin", "website"}
	workExperienceKeys = []string{"id", "company", "title", "startDate", "endDate", "description", "location"}
	educationKeys      = []string{"id", "institution", "degree", "field", "startDate", "endDate", "gpa"}
	skillKeys          = []string{"name", "category", "level"}
)

// findCaseVariant reports the first object key, in document order of sections,
// that is not a declared property but case-folds onto one.
func findCaseVariant(raw interface{}) (path, declared string, found bool) {
	root, ok := raw.(map[string]interface{})
	if !ok {
		return "", "", false
	}
	if path, declared, found = checkKeys(root, "", documentKeys); found {
		return path, declared, true
	}

	if info, ok := root["personalInfo"].(map[string]interface{}); ok {
		if path, declared, found = checkKeys(info, "personalInfo", personalInfoKeys); found {
			return path, declared, true
		}
	}

	sections := []struct {
		name string
		keys []string
	}{
		{"workExperience", workExperienceKeys},
		{"education", educationKeys},
		{"skills", skillKeys},
	}
	for _, section := range sections {
		entries, _ := root[section.name].([]interface{})
		for i, entry := range entries {
			obj, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			prefix := fmt.Sprintf("%s[%d]", section.name, i)
			if path, declared, found = checkKeys(obj, prefix, section.keys); found {
				return path, declared, true
			}
		}
	}
	return "", "", false
}

func checkKeys(obj map[string]interface{}, prefix string, keys []string) (string, string, bool) {
	names := make([]string, 0, len(obj))
	for k := range obj {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		for _, declared := range keys {
			if k != declared && strings.EqualFold(k, declared) {
				if prefix == "" {
					return k, declared, true
				}
				return prefix + "." + k, declared, true
			}
		}
	}
	return "", "", false
}
