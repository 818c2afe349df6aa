package rendering

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-builder/internal/types"
)

// PresentLabel is the display word for the types.Present end date.
const PresentLabel = "Present"

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var yearMonth = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// FormatDate converts a YYYY-MM date to "Mon YYYY" and the present sentinel to
// PresentLabel. Anything else is returned unchanged.
func FormatDate(value string) string {
	if value == types.Present {
		return PresentLabel
	}

	m := yearMonth.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > 12 {
		return value
	}
	return monthAbbreviations[month-1] + " " + m[1]
}

// FormatDateRange formats a start/end pair as "Mon YYYY - Mon YYYY".
// A missing side is omitted.
func FormatDateRange(start, end string) string {
	s, e := FormatDate(start), FormatDate(end)
	switch {
	case s == "" && e == "":
		return ""
	case s == "":
		return e
	case e == "":
		return s
	}
	return s + " - " + e
}
