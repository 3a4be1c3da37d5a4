package core

import (
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ContentBlockedError is returned when moderation flags content with a
// severity that hard-blocks persistence. Issues and Suggestions must be
// surfaced to the author, never dropped.
type ContentBlockedError struct {
	Issues      []string
	Suggestions []string
}

func NewContentBlockedError(issues, suggestions []string) error {
	return &ContentBlockedError{Issues: issues, Suggestions: suggestions}
}

func (err ContentBlockedError) Error() string {
	return "content blocked: " + strings.Join(err.Issues, "; ")
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
