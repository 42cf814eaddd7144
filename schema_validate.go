package jsonschema

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

// ValidateBytes parses data as JSON and validates it.
func (v *Validator) ValidateBytes(data []byte) error {
	if v == nil || v.root == nil {
		return schemaNotLoadedError()
	}
	instance, err := jsonvalue.Parse(data)
	if err != nil {
		return errors.NewValidation(errors.ErrJSONParse, err.Error(), nil)
	}
	return v.Validate(&instance)
}

// ValidateReader reads a JSON document from r and validates it.
func (v *Validator) ValidateReader(r io.Reader) error {
	if v == nil || v.root == nil {
		return schemaNotLoadedError()
	}
	if r == nil {
		return errors.NewValidation(errors.ErrJSONParse, "nil reader", nil)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read json document: %w", err)
	}
	return v.ValidateBytes(data)
}

// ValidateFSFile validates a JSON file from the provided filesystem.
func (v *Validator) ValidateFSFile(fsys fs.FS, path string) error {
	return v.validateFile(path, func(filePath string) (io.ReadCloser, error) {
		if fsys == nil {
			return nil, fmt.Errorf("nil fs")
		}
		return fsys.Open(filePath)
	})
}

// ValidateFile validates a JSON file against the schema.
func (v *Validator) ValidateFile(path string) error {
	return v.validateFile(path, func(filePath string) (io.ReadCloser, error) {
		return os.Open(filePath)
	})
}

func (v *Validator) validateFile(path string, openFile func(string) (io.ReadCloser, error)) (err error) {
	if v == nil || v.root == nil {
		return schemaNotLoadedError()
	}

	f, err := openFile(path)
	if err != nil {
		return fmt.Errorf("open json file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close json file %s: %w", path, closeErr)
		}
	}()

	return v.ValidateReader(f)
}
