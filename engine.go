package jsonschema

import (
	"fmt"
	"sync"

	"github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/internal/compiler"
	"github.com/jacoelho/jsonschema/internal/jsonpointer"
	"github.com/jacoelho/jsonschema/internal/keyword"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// arenaCapacity is the initial node capacity of a pooled path arena.
const arenaCapacity = 64

// Validator holds a compiled schema and validates many instances against it.
// It is safe for concurrent use by multiple goroutines.
type Validator struct {
	root     keyword.Node
	pool     sync.Pool
	maxDepth int
}

// New compiles schema into a Validator. An invalid schema yields an
// *errors.SchemaError; later options override earlier ones.
func New(schema *jsonvalue.Value, opts ...Options) (*Validator, error) {
	resolved, err := mergeOptions(opts).withDefaults()
	if err != nil {
		return nil, fmt.Errorf("new validator: %w", err)
	}
	root, err := compiler.Compile(schema, compiler.Config{
		Logger:   resolved.logger,
		MaxDepth: resolved.limits.maxSchemaDepth,
	})
	if err != nil {
		return nil, err
	}
	return newValidator(root, resolved.limits.maxInstanceDepth), nil
}

func newValidator(root keyword.Node, maxDepth int) *Validator {
	v := &Validator{
		root:     root,
		maxDepth: maxDepth,
	}
	v.pool.New = func() any {
		return v.newArena()
	}
	return v
}

// Validate checks instance against the compiled schema. It returns nil or a
// single *errors.ValidationError locating the first violation.
func (v *Validator) Validate(instance *jsonvalue.Value) error {
	if v == nil || v.root == nil {
		return schemaNotLoadedError()
	}
	arena := v.acquire()
	err := v.root.Validate(instance, arena.Root())
	v.release(arena)
	return err
}

func (v *Validator) newArena() *jsonpointer.Arena {
	arena := jsonpointer.NewArena(arenaCapacity)
	arena.MaxDepth = v.maxDepth
	return arena
}

func (v *Validator) acquire() *jsonpointer.Arena {
	if a, ok := v.pool.Get().(*jsonpointer.Arena); ok && a != nil {
		return a
	}
	return v.newArena()
}

func (v *Validator) release(a *jsonpointer.Arena) {
	if a == nil || a.Oversized() {
		return
	}
	a.Reset()
	v.pool.Put(a)
}

func schemaNotLoadedError() error {
	return errors.NewValidation(errors.ErrSchemaNotLoaded, "schema not loaded", nil)
}
