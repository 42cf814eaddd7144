package errors

import (
	"errors"
	"slices"
	"strings"

	"github.com/jacoelho/jsonschema/internal/jsonpointer"
)

// ErrorCode classifies a validation or schema error.
type ErrorCode string

const (
	// ErrSchemaNotLoaded indicates validation was attempted without a compiled schema.
	ErrSchemaNotLoaded ErrorCode = "schema-not-loaded"
	// ErrJSONParse indicates the instance document could not be parsed.
	ErrJSONParse ErrorCode = "json-parse-error"
	// ErrType indicates an instance value has the wrong JSON type.
	ErrType ErrorCode = "type"
	// ErrMaxDepth indicates the instance is nested deeper than allowed.
	ErrMaxDepth ErrorCode = "max-depth"

	// ErrSchemaInvalidType indicates a schema (or subschema) is not an object.
	ErrSchemaInvalidType ErrorCode = "schema-invalid-type"
	// ErrSchemaInvalidKeyword indicates a keyword has an unusable value.
	ErrSchemaInvalidKeyword ErrorCode = "schema-invalid-keyword"
	// ErrSchemaMaxDepth indicates the schema is nested deeper than allowed.
	ErrSchemaMaxDepth ErrorCode = "schema-max-depth"
	// ErrSchemaParse indicates the schema document could not be parsed.
	ErrSchemaParse ErrorCode = "schema-parse-error"
)

// ValidationError reports the single constraint an instance violated and
// where inside the instance it happened.
type ValidationError struct {
	Code     string
	Message  string
	Location []string
}

// NewValidation builds a ValidationError. location is owned by the error.
func NewValidation(code ErrorCode, msg string, location []string) *ValidationError {
	return &ValidationError{Code: string(code), Message: msg, Location: location}
}

// LocationPointer renders Location as a JSON pointer ("" for the root).
// Segments are escaped per RFC 6901.
func (v *ValidationError) LocationPointer() string {
	if v == nil {
		return ""
	}
	return jsonpointer.Format(v.Location)
}

// Error formats the message followed by the location, when there is one.
func (v *ValidationError) Error() string {
	if v == nil {
		return "validation <nil>"
	}
	if len(v.Location) == 0 {
		return v.Message
	}
	var b strings.Builder
	b.WriteString(v.Message)
	b.WriteString(" at ")
	b.WriteString(v.LocationPointer())
	return b.String()
}

// Clone returns a deep copy of v.
func (v *ValidationError) Clone() *ValidationError {
	if v == nil {
		return nil
	}
	out := *v
	out.Location = slices.Clone(v.Location)
	return &out
}

// AsValidation extracts a ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var v *ValidationError
	if errors.As(err, &v) && v != nil {
		return v, true
	}
	return nil, false
}
