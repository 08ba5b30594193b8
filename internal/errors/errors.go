// Package errors provides the error taxonomy for daggy.
package errors

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the path the error refers to (optional).
	Location string

	// Field is the offending config key or argument (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	for _, k := range e.contextKeys() {
		writeContext(&b, k, e.Context[k])
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// leadingContext lists the context keys of a failed command, rendered first
// and in this order.
var leadingContext = []string{ContextCommand, ContextDir}

// contextKeys orders the context: command keys first, the rest sorted.
func (e *DetailError) contextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for _, k := range leadingContext {
		if _, ok := e.Context[k]; ok {
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range e.Context {
		if !slices.Contains(leadingContext, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// writeContext renders one context entry. Multi-line values such as captured
// stderr go in an indented block below the key.
func writeContext(b *strings.Builder, key, value string) {
	b.WriteString("  ")
	b.WriteString(key)
	b.WriteString(":")

	if !strings.Contains(value, "\n") {
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
		return
	}

	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(value, "\n"), "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Context keys set on command failures.
const (
	ContextCommand = "Command"
	ContextDir     = "Dir"
	ContextStderr  = "Stderr"
)

// NewToolchainError creates an error for a failed external command.
func NewToolchainError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "command failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrToolchain,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
