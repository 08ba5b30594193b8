// Package cmdutil provides shared command utilities for mod subcommands.
// It centralizes flag groups, the change-detection pipeline shared by
// inspect and sync, and error reporting helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/variant"
)

// VariantFlags holds the module type selector (create, inspect, sync).
type VariantFlags struct {
	Type string
}

// AddTo registers --type on cmd. allowAll adds the "all" selector to the
// help text and uses it as the default.
func (f *VariantFlags) AddTo(cmd *cobra.Command, allowAll bool) {
	if allowAll {
		cmd.Flags().StringVarP(&f.Type, "type", "t", variant.SelectorAll,
			"Module type: full, light or all")
		return
	}
	cmd.Flags().StringVarP(&f.Type, "type", "t", variant.Default().Name,
		"Module type: full or light")
}

// Variants resolves the selector to the variants it names.
func (f *VariantFlags) Variants() ([]variant.Variant, error) {
	return variant.Select(f.Type)
}

// Variant resolves the selector to exactly one variant.
func (f *VariantFlags) Variant() (variant.Variant, error) {
	return variant.Get(f.Type)
}

// DetectFlags holds flags for commands that report changes (inspect, sync).
type DetectFlags struct {
	Detailed bool
}

// AddTo registers the detection flags on the given cobra command.
func (f *DetectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Detailed, "detailed", "d", false,
		"Include a line diff for every changed file")
}
