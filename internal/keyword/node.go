// Package keyword implements the compiled validator tree: one node kind per
// schema keyword, all sharing the Node contract.
package keyword

import (
	"github.com/jacoelho/jsonschema/internal/jsonpointer"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// Node checks one aspect of an instance.
//
// Validate must not modify instance and must not keep path after returning.
// On failure it returns exactly one *errors.ValidationError whose location
// points at the offending value; errors from child nodes are returned as is.
type Node interface {
	Validate(instance *jsonvalue.Value, path jsonpointer.Path) error
}

// Group applies nodes in order and stops at the first failure.
// An empty Group accepts every instance.
type Group []Node

// Validate implements Node.
func (g Group) Validate(instance *jsonvalue.Value, path jsonpointer.Path) error {
	for _, n := range g {
		if err := n.Validate(instance, path); err != nil {
			return err
		}
	}
	return nil
}
