package jsonschema

import "github.com/jensneuse/abstractlogger"

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// Options configures schema compilation and instance validation.
// The zero value is valid and uses defaults.
type Options struct {
	logger           abstractlogger.Logger
	maxSchemaDepth   intOption
	maxInstanceDepth intOption
}

type resolvedOptions struct {
	logger abstractlogger.Logger
	limits validationLimits
}
