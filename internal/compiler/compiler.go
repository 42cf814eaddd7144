// Package compiler turns a schema document into a tree of keyword nodes.
//
// It understands the "type" and "properties" keywords. Every other keyword is
// ignored and reported to the debug logger.
package compiler

import (
	"cmp"
	"slices"

	"github.com/jensneuse/abstractlogger"

	jserrors "github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/internal/jsonpointer"
	"github.com/jacoelho/jsonschema/internal/keyword"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// DefaultMaxDepth bounds subschema nesting when Config.MaxDepth is zero.
const DefaultMaxDepth = 256

// Config controls compilation.
type Config struct {
	Logger   abstractlogger.Logger
	MaxDepth int
}

type compileFunc func(c *compiler, value *jsonvalue.Value, depth int) (keyword.Node, error)

type keywordCompiler struct {
	compile compileFunc
	name    string
}

// keywords is applied in this order regardless of document order, so a
// compiled group checks the instance type before descending into members.
// It is filled in init because compileProperties recurses through it.
var keywords []keywordCompiler

func init() {
	keywords = []keywordCompiler{
		{name: "type", compile: compileType},
		{name: "properties", compile: compileProperties},
	}
}

func isKnownKeyword(name string) bool {
	for _, kw := range keywords {
		if kw.name == name {
			return true
		}
	}
	return false
}

type compiler struct {
	log      abstractlogger.Logger
	location []string
	maxDepth int
}

// Compile compiles schema into a node tree. Errors are *errors.SchemaError.
func Compile(schema *jsonvalue.Value, cfg Config) (keyword.Node, error) {
	if schema == nil {
		return nil, jserrors.NewSchema(jserrors.ErrSchemaInvalidType, "schema is nil", nil)
	}
	c := &compiler{
		log:      cfg.Logger,
		maxDepth: cmp.Or(cfg.MaxDepth, DefaultMaxDepth),
	}
	if c.log == nil {
		c.log = abstractlogger.NoopLogger
	}
	return c.compileSchema(schema, 0)
}

func (c *compiler) compileSchema(schema *jsonvalue.Value, depth int) (keyword.Node, error) {
	if depth > c.maxDepth {
		return nil, jserrors.NewSchemaf(jserrors.ErrSchemaMaxDepth, c.loc(), "schema nesting exceeds %d", c.maxDepth)
	}
	if schema.Kind() != jsonvalue.KindObject {
		return nil, jserrors.NewSchemaf(jserrors.ErrSchemaInvalidType, c.loc(), "schema must be an object, got %s", schema.Kind())
	}

	for _, m := range schema.Members() {
		if !isKnownKeyword(m.Key) {
			c.log.Debug("compiler.compileSchema: keyword ignored",
				abstractlogger.String("keyword", m.Key),
				abstractlogger.String("location", jsonpointer.Format(c.location)),
			)
		}
	}

	var group keyword.Group
	for _, kw := range keywords {
		value, ok := schema.Get(kw.name)
		if !ok {
			continue
		}
		c.location = append(c.location, kw.name)
		node, err := kw.compile(c, value, depth)
		c.location = c.location[:len(c.location)-1]
		if err != nil {
			return nil, err
		}
		group = append(group, node)
	}
	if len(group) == 1 {
		return group[0], nil
	}
	return group, nil
}

func compileType(c *compiler, value *jsonvalue.Value, _ int) (keyword.Node, error) {
	if value.Kind() != jsonvalue.KindString {
		return nil, jserrors.NewSchemaf(jserrors.ErrSchemaInvalidKeyword, c.loc(), "type must be a string, got %s", value.Kind())
	}
	typ, ok := keyword.ParseType(value.Text())
	if !ok {
		return nil, jserrors.NewSchemaf(jserrors.ErrSchemaInvalidKeyword, c.loc(), "unknown type %q", value.Text())
	}
	return typ, nil
}

func compileProperties(c *compiler, value *jsonvalue.Value, depth int) (keyword.Node, error) {
	if value.Kind() != jsonvalue.KindObject {
		return nil, jserrors.NewSchemaf(jserrors.ErrSchemaInvalidKeyword, c.loc(), "properties must be an object, got %s", value.Kind())
	}
	members := value.Members()
	props := make([]keyword.Property, 0, len(members))
	for i := range members {
		c.location = append(c.location, members[i].Key)
		node, err := c.compileSchema(&members[i].Value, depth+1)
		c.location = c.location[:len(c.location)-1]
		if err != nil {
			return nil, err
		}
		props = append(props, keyword.Property{Name: members[i].Key, Node: node})
	}
	return keyword.NewProperties(props), nil
}

func (c *compiler) loc() []string {
	return slices.Clone(c.location)
}
