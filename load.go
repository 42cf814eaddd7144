package jsonschema

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// Load reads and compiles a schema document from the given filesystem.
func Load(fsys fs.FS, location string) (*Validator, error) {
	return LoadWithOptions(fsys, location, NewOptions())
}

// LoadWithOptions reads and compiles a schema document with explicit configuration.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func LoadWithOptions(fsys fs.FS, location string, opts Options) (*Validator, error) {
	if fsys == nil {
		return nil, fmt.Errorf("load schema %s: nil fs", location)
	}
	data, err := fs.ReadFile(fsys, location)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	schema, err := decodeSchema(location, data)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	v, err := New(&schema, opts)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	return v, nil
}

// LoadFile reads and compiles a schema from a file path.
func LoadFile(path string) (*Validator, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	return LoadWithOptions(os.DirFS(dir), base, NewOptions())
}

func decodeSchema(location string, data []byte) (jsonvalue.Value, error) {
	var (
		schema jsonvalue.Value
		err    error
	)
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		schema, err = jsonvalue.FromYAML(data)
	default:
		schema, err = jsonvalue.Parse(data)
	}
	if err != nil {
		return jsonvalue.Value{}, errors.WrapSchema(errors.ErrSchemaParse, "parse schema", err)
	}
	return schema, nil
}
