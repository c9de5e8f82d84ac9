package validation

import (
	"errors"
	"fmt"
)

// Error reports missing or malformed input. Callers may show Message to users.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

func Newf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether err is, or wraps, a validation error.
func IsError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}
