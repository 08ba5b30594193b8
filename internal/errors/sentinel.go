package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input such as a bad module name,
	// an unknown module type, or a config file that fails its schema.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a missing git root, template tree, or module.
	ErrNotFound = errors.New("not found")

	// ErrToolchain indicates an external tool (dagger, go) failed or is missing.
	ErrToolchain = errors.New("toolchain error")
)
