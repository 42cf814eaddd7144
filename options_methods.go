package jsonschema

import (
	"fmt"

	"github.com/jensneuse/abstractlogger"
)

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithMaxInstanceDepth sets the instance nesting limit checked during validation (0 uses default).
func (o Options) WithMaxInstanceDepth(value int) Options {
	o.maxInstanceDepth = intOption{value: value, set: true}
	return o
}

// WithMaxSchemaDepth sets the schema nesting limit checked during compilation (0 uses default).
func (o Options) WithMaxSchemaDepth(value int) Options {
	o.maxSchemaDepth = intOption{value: value, set: true}
	return o
}

// WithLogger sets the logger used while compiling schemas (nil uses a no-op logger).
func (o Options) WithLogger(logger abstractlogger.Logger) Options {
	o.logger = logger
	return o
}

// merge overlays the fields explicitly set in other onto o.
func (o Options) merge(other Options) Options {
	if other.logger != nil {
		o.logger = other.logger
	}
	if other.maxSchemaDepth.set {
		o.maxSchemaDepth = other.maxSchemaDepth
	}
	if other.maxInstanceDepth.set {
		o.maxInstanceDepth = other.maxInstanceDepth
	}
	return o
}

func (o Options) withDefaults() (resolvedOptions, error) {
	limits, err := resolveValidationLimits(o.maxSchemaDepth.resolved(), o.maxInstanceDepth.resolved())
	if err != nil {
		return resolvedOptions{}, fmt.Errorf("validation limits: %w", err)
	}
	logger := o.logger
	if logger == nil {
		logger = abstractlogger.NoopLogger
	}
	return resolvedOptions{logger: logger, limits: limits}, nil
}

func mergeOptions(opts []Options) Options {
	var merged Options
	for _, opt := range opts {
		merged = merged.merge(opt)
	}
	return merged
}
