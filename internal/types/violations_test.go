// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	count := 3
	violation := Violation{
		Type:     ViolationTableLayout,
		Severity: "error",
		Details:  "document contains table layout elements",
		Style:    "classic",
		Element:  "td",
		Count:    &count,
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "table_layout"`)
	assert.Contains(t, string(jsonBytes), `"severity": "error"`)
	assert.Contains(t, string(jsonBytes), `"style": "classic"`)
	assert.Contains(t, string(jsonBytes), `"element": "td"`)
	assert.Contains(t, string(jsonBytes), `"count": 3`)
}

func TestViolation_OptionalFields(t *testing.T) {
	violation := Violation{
		Type:     ViolationMissingTitle,
		Severity: "error",
		Details:  "document has no title element",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "style")
	assert.NotContains(t, string(jsonBytes), "count")

	var unmarshaled Violation
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Nil(t, unmarshaled.Count)
	assert.Empty(t, unmarshaled.Element)
}

func TestViolations_EmptyListMarshalsAsArray(t *testing.T) {
	jsonBytes, err := json.Marshal(Violations{Violations: []Violation{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"violations": []}`, string(jsonBytes))
}
