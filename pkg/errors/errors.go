package errors

import (
	"fmt"
)

// ParseError reports input that could not be decoded. Source names where the
// input came from: a config path, or the format pattern for date strings.
type ParseError struct {
	Source  string
	Line    int
	Input   string
	Message string
	Err     error
}

// NewParseError constructs a ParseError for a file or pattern.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

// NewInputParseError constructs a ParseError for a single input string,
// such as a date typed by the user.
func NewInputParseError(source, input string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Input: input, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	case e.Input != "":
		return fmt.Sprintf("parse error: %q as %s: %s", e.Input, e.Source, e.Message)
	default:
		return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures an option or configuration value that is out of
// its allowed domain.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
