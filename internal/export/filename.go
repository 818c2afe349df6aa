package export

import (
	"regexp"
	"strings"
	"time"
)

// FallbackName replaces a name that sanitizes to nothing.
const FallbackName = "cv"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeName lowercases name, replaces every run of non-alphanumeric
// characters with a single underscore and trims underscores from both ends.
func SanitizeName(name string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return FallbackName
	}
	return s
}

// GenerateFileName returns {name}_{style}_{YYYY-MM-DD}.{format} for today.
func GenerateFileName(name, style, format string) string {
	return GenerateFileNameAt(name, style, format, time.Now())
}

// GenerateFileNameAt is GenerateFileName with an explicit date.
func GenerateFileNameAt(name, style, format string, at time.Time) string {
	return SanitizeName(name) + "_" + style + "_" + at.Format("2006-01-02") + "." + format
}
