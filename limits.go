package jsonschema

import (
	"cmp"
	"fmt"

	"github.com/jacoelho/jsonschema/internal/compiler"
)

const (
	defaultMaxSchemaDepth   = compiler.DefaultMaxDepth
	defaultMaxInstanceDepth = 256
)

type validationLimits struct {
	maxSchemaDepth   int
	maxInstanceDepth int
}

func resolveValidationLimits(maxSchemaDepth, maxInstanceDepth int) (validationLimits, error) {
	if maxSchemaDepth < 0 {
		return validationLimits{}, fmt.Errorf("schema max depth must be >= 0")
	}
	if maxInstanceDepth < 0 {
		return validationLimits{}, fmt.Errorf("instance max depth must be >= 0")
	}
	return validationLimits{
		maxSchemaDepth:   cmp.Or(maxSchemaDepth, defaultMaxSchemaDepth),
		maxInstanceDepth: cmp.Or(maxInstanceDepth, defaultMaxInstanceDepth),
	}, nil
}
