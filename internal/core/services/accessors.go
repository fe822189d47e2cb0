package services

import (
	"fmt"

	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
)

// accessor is one registered accessor function with its arity metadata.
// Zero-arity accessors never see the field name; field-arity accessors
// always receive the configured field name as their argument.
type accessor struct {
	fn        func(recv any, field string) (any, error)
	wantField bool
}

// AccessorRegistry maps accessor names to typed function references.
// Registrations happen once during configuration setup; lookups during
// resolution are read-only. An unregistered name is an authoring defect
// and surfaces as domain.ErrUnknownAccessor.
type AccessorRegistry struct {
	accessors map[string]accessor
}

// NewAccessorRegistry creates an empty accessor registry.
func NewAccessorRegistry() *AccessorRegistry {
	return &AccessorRegistry{accessors: make(map[string]accessor)}
}

// Register adds a zero-arity accessor. recv is the document for the
// first step of a chain and the previous step's result afterwards.
func (r *AccessorRegistry) Register(name string, fn func(recv any) (any, error)) {
	r.accessors[name] = accessor{
		fn: func(recv any, _ string) (any, error) { return fn(recv) },
	}
}

// RegisterWithField adds a field-arity accessor. The configured field
// name is passed as the trailing argument on every invocation.
func (r *AccessorRegistry) RegisterWithField(name string, fn func(recv any, field string) (any, error)) {
	r.accessors[name] = accessor{fn: fn, wantField: true}
}

// Known reports whether an accessor name is registered. Used to resolve
// configured accessor chains at configuration-load time.
func (r *AccessorRegistry) Known(name string) bool {
	_, ok := r.accessors[name]
	return ok
}

// InvokeChain invokes each named accessor in sequence, the output of one
// feeding the next. The first step receives the document. A nil
// intermediate result short-circuits to nil rather than failing: an
// absent value is a data condition, not an error.
func (r *AccessorRegistry) InvokeChain(doc driven.Document, field string, chain []string) (any, error) {
	var recv any = doc
	for _, name := range chain {
		acc, ok := r.accessors[name]
		if !ok {
			return nil, fmt.Errorf("accessor %q: %w", name, domain.ErrUnknownAccessor)
		}
		if recv == nil {
			return nil, nil
		}
		out, err := acc.fn(recv, field)
		if err != nil {
			return nil, fmt.Errorf("accessor %q: %w", name, err)
		}
		recv = out
	}
	return recv, nil
}
