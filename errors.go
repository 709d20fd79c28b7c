// Package objcgo holds the error model shared by the objcgo generator packages.
package objcgo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// CodeMalformedInput reports a declaration tree that violates an invariant the
	// front end is expected to guarantee. It always aborts the run.
	CodeMalformedInput  ErrorCode = "malformed_input"
	CodeInvalidConfig   ErrorCode = "invalid_config"
	CodeInvalidArgument ErrorCode = "invalid_argument"
	CodeInternal        ErrorCode = "internal"
)

// Error is the error type returned by every objcgo package.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Malformedf is shorthand for Errorf(CodeMalformedInput, ...).
func Malformedf(format string, args ...any) *Error {
	return Errorf(CodeMalformedInput, format, args...)
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsMalformed reports whether err was caused by malformed input.
func IsMalformed(err error) bool {
	return err != nil && CodeOf(err) == CodeMalformedInput
}

// FromValidation converts validator errors into an invalid_config Error.
// Errors of any other type are returned unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	details := make(map[string]any)
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Namespace()] = msg
		messages = append(messages, ve.Namespace()+": "+msg)
	}
	return &Error{
		Code:    CodeInvalidConfig,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "goident":
		return "must be a valid Go identifier"
	case "printascii":
		return "must be printable ASCII"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
