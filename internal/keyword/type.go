package keyword

import (
	"fmt"

	jserrors "github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/internal/jsonpointer"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// Type is the "type" keyword with a single expected type.
type Type uint8

const (
	TypeArray Type = iota
	TypeBoolean
	TypeInteger
	TypeNull
	TypeNumber
	TypeObject
	TypeString
)

var typeNames = [...]string{
	TypeArray:   "array",
	TypeBoolean: "boolean",
	TypeInteger: "integer",
	TypeNull:    "null",
	TypeNumber:  "number",
	TypeObject:  "object",
	TypeString:  "string",
}

// Types lists every Type in name order.
var Types = []Type{TypeArray, TypeBoolean, TypeInteger, TypeNull, TypeNumber, TypeObject, TypeString}

// ParseType maps a schema type name to a Type.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// String returns the schema name of t.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Matches reports whether instance has type t. Integer accepts any number
// exactly representable as a 64-bit signed or unsigned integer.
func (t Type) Matches(instance *jsonvalue.Value) bool {
	switch kind := instance.Kind(); t {
	case TypeArray:
		return kind == jsonvalue.KindArray
	case TypeBoolean:
		return kind == jsonvalue.KindBool
	case TypeInteger:
		return kind == jsonvalue.KindNumber && instance.IsInteger()
	case TypeNull:
		return kind == jsonvalue.KindNull
	case TypeNumber:
		return kind == jsonvalue.KindNumber
	case TypeObject:
		return kind == jsonvalue.KindObject
	case TypeString:
		return kind == jsonvalue.KindString
	default:
		return false
	}
}

// Validate implements Node. The error location is path itself.
func (t Type) Validate(instance *jsonvalue.Value, path jsonpointer.Path) error {
	if t.Matches(instance) {
		return nil
	}
	return jserrors.NewValidation(
		jserrors.ErrType,
		fmt.Sprintf("%s is not of type '%s'", instance.String(), t),
		path.Segments(),
	)
}
