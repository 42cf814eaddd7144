package jsonschema_test

import (
	"fmt"
	"testing/fstest"

	"github.com/jacoelho/jsonschema"
	"github.com/jacoelho/jsonschema/errors"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

func ExampleLoad() {
	fsys := fstest.MapFS{
		"person.json": &fstest.MapFile{Data: []byte(`{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"}
  }
}`)},
	}

	v, err := jsonschema.Load(fsys, "person.json")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	_ = v
	fmt.Println("Schema loaded successfully")
	// Output: Schema loaded successfully
}

func ExampleValidator_Validate() {
	schema := jsonvalue.Object(
		jsonvalue.Field("type", jsonvalue.String("object")),
		jsonvalue.Field("properties", jsonvalue.Object(
			jsonvalue.Field("address", jsonvalue.Object(
				jsonvalue.Field("properties", jsonvalue.Object(
					jsonvalue.Field("zip", jsonvalue.Object(jsonvalue.Field("type", jsonvalue.String("string")))),
				)),
			)),
		)),
	)
	v, err := jsonschema.New(&schema)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	instance := jsonvalue.MustParse(`{"address":{"zip":12345}}`)
	if err := v.Validate(&instance); err != nil {
		if verr, ok := errors.AsValidation(err); ok {
			fmt.Println(verr.LocationPointer())
		}
		fmt.Println(err)
		return
	}
	fmt.Println("Document is valid")
	// Output:
	// /address/zip
	// 12345 is not of type 'string' at /address/zip
}

func ExampleValidate() {
	schema := jsonvalue.MustParse(`{"properties":{"count":{"type":"integer"}}}`)
	instance := jsonvalue.MustParse(`{"count":1.5}`)

	fmt.Println(jsonschema.Validate(&instance, &schema))
	// Output: 1.5 is not of type 'integer' at /count
}
