package validation

import "fmt"

// Error is returned when a checker cannot inspect its input at all, for
// example when rendered HTML cannot be parsed. Rule violations are reported
// through Result or types.Violations instead.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("check could not run: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("check could not run: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
