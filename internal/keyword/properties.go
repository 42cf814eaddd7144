package keyword

import (
	"fmt"

	jserrors "github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/internal/jsonpointer"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// Property pairs a declared property name with its compiled subschema.
type Property struct {
	Name string
	Node Node
}

// Properties is the "properties" keyword. Declared properties are checked in
// declaration order; undeclared and missing properties are ignored.
type Properties struct {
	props []Property
}

// NewProperties returns a Properties node. props is owned by the node.
func NewProperties(props []Property) *Properties {
	return &Properties{props: props}
}

// Len returns the number of declared properties.
func (p *Properties) Len() int {
	return len(p.props)
}

// Validate implements Node. Non-object instances pass.
func (p *Properties) Validate(instance *jsonvalue.Value, path jsonpointer.Path) error {
	if instance.Kind() != jsonvalue.KindObject {
		return nil
	}
	for i := range p.props {
		prop := &p.props[i]
		value, ok := instance.Get(prop.Name)
		if !ok {
			continue
		}
		child := path.Push(prop.Name)
		if child.Exceeds() {
			return jserrors.NewValidation(
				jserrors.ErrMaxDepth,
				fmt.Sprintf("maximum depth %d exceeded", child.Depth()-1),
				child.Segments(),
			)
		}
		if err := prop.Node.Validate(value, child); err != nil {
			return err
		}
	}
	return nil
}
