package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownAccessor indicates a field config names an accessor that
	// was never registered. This is an authoring defect and fails fast;
	// it is never folded into an absent value.
	ErrUnknownAccessor = errors.New("unknown accessor")

	// ErrUnknownHelper indicates a field config names a helper that was
	// never registered. Like ErrUnknownAccessor, it fails fast.
	ErrUnknownHelper = errors.New("unknown helper")

	// ErrInvalidFieldConfig indicates a field configuration entry could
	// not be normalised at load time.
	ErrInvalidFieldConfig = errors.New("invalid field configuration")
)
