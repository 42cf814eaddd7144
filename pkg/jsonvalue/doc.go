// Package jsonvalue provides an immutable JSON document model for validation.
// Objects keep their members in document order and numbers keep their literal
// text, so integer checks never lose precision.
package jsonvalue
