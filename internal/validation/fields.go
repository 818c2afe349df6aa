// Package validation provides business-rule validation for resume documents and
// machine-readability checks for rendered output.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	yearMonthPattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)
)

var fieldValidator *validator.Validate

func init() {
	fieldValidator = validator.New()

	// Registration only fails on empty tags or nil funcs.
	_ = fieldValidator.RegisterValidation("resume_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = fieldValidator.RegisterValidation("year_month", func(fl validator.FieldLevel) bool {
		return yearMonthPattern.MatchString(fl.Field().String())
	})
}

// ValidateEmail reports whether email has the basic local@domain.tld shape.
func ValidateEmail(email string) bool {
	return fieldValidator.Var(email, "required,resume_email") == nil
}

// ValidateYearMonth reports whether value is a YYYY-MM date with a real month.
func ValidateYearMonth(value string) bool {
	return fieldValidator.Var(value, "required,year_month") == nil
}

// ValidateDateRange reports whether end is not earlier than start.
// An end of types.Present is always accepted.
func ValidateDateRange(start, end string) bool {
	if end == types.Present {
		return true
	}

	startYear, startMonth, ok := parseYearMonth(start)
	if !ok {
		return false
	}
	endYear, endMonth, ok := parseYearMonth(end)
	if !ok {
		return false
	}

	if endYear != startYear {
		return endYear > startYear
	}
	return endMonth >= startMonth
}

func parseYearMonth(value string) (int, int, bool) {
	if !ValidateYearMonth(value) {
		return 0, 0, false
	}
	m := yearMonthPattern.FindStringSubmatch(value)
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
