package errors

import (
	"errors"
	"fmt"

	"github.com/jacoelho/jsonschema/internal/jsonpointer"
)

// SchemaError reports a structurally invalid schema. Location points into the
// schema document.
type SchemaError struct {
	Code     string
	Message  string
	Location []string
	Err      error
}

// NewSchema builds a SchemaError.
func NewSchema(code ErrorCode, msg string, location []string) *SchemaError {
	return &SchemaError{Code: string(code), Message: msg, Location: location}
}

// NewSchemaf formats a message and builds a SchemaError.
func NewSchemaf(code ErrorCode, location []string, format string, args ...any) *SchemaError {
	return NewSchema(code, fmt.Sprintf(format, args...), location)
}

// WrapSchema builds a SchemaError caused by err.
func WrapSchema(code ErrorCode, msg string, err error) *SchemaError {
	return &SchemaError{Code: string(code), Message: msg, Err: err}
}

// Error formats the schema error with its location and cause.
func (s *SchemaError) Error() string {
	if s == nil {
		return "schema <nil>"
	}
	msg := "invalid schema: " + s.Message
	if len(s.Location) > 0 {
		msg += " at " + jsonpointer.Format(s.Location)
	}
	if s.Err != nil {
		msg += ": " + s.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (s *SchemaError) Unwrap() error {
	if s == nil {
		return nil
	}
	return s.Err
}

// LocationPointer renders Location as a JSON pointer into the schema.
func (s *SchemaError) LocationPointer() string {
	if s == nil {
		return ""
	}
	return jsonpointer.Format(s.Location)
}

// AsSchema extracts a SchemaError from err.
func AsSchema(err error) (*SchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var s *SchemaError
	if errors.As(err, &s) && s != nil {
		return s, true
	}
	return nil, false
}
