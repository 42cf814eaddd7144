// Package jsonschema validates JSON documents against compiled schemas.
//
// A schema is compiled once into a Validator, which is safe for concurrent
// use. Validation is fail-fast: the first violated constraint is reported as
// a single *errors.ValidationError carrying the location of the offending
// value as a JSON pointer.
//
//	v, err := jsonschema.LoadFile("schema.json")
//	if err != nil {
//		return err
//	}
//	if err := v.ValidateFile("document.json"); err != nil {
//		if verr, ok := errors.AsValidation(err); ok {
//			fmt.Println(verr.LocationPointer(), verr.Message)
//		}
//	}
//
// Only the "type" and "properties" keywords are enforced; other keywords are
// accepted and ignored.
package jsonschema
