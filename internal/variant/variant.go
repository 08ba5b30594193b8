// Package variant describes the module flavors daggy can scaffold and sync.
package variant

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/naming"
	"github.com/daggerx/daggy/internal/templates"
)

// SelectorAll selects every variant.
const SelectorAll = "all"

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 3

// Variant is a named module flavor with its own template tree.
type Variant struct {
	// Name is the selector used on the command line ("full", "light").
	Name string
	// TemplateDir is the variant's directory under the templates directory.
	TemplateDir string
	// Reference is the in-repo module rendered from this variant that sync
	// and inspect compare against.
	Reference naming.Identifier
}

var registry = []Variant{
	{Name: "full", TemplateDir: "mod-full", Reference: "module-template"},
	{Name: "light", TemplateDir: "mod-light", Reference: "module-template-light"},
}

// Default is the variant used when none is selected.
func Default() Variant { return registry[0] }

// All returns every registered variant in processing order.
func All() []Variant {
	out := make([]Variant, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered variant names.
func Names() []string {
	names := make([]string, len(registry))
	for i, v := range registry {
		names[i] = v.Name
	}
	return names
}

// Get returns the variant called name.
func Get(name string) (Variant, error) {
	for _, v := range registry {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, unknownError(name, Names())
}

// Select resolves a selector ("full", "light" or "all") to the variants it
// names, in processing order.
func Select(selector string) ([]Variant, error) {
	if selector == SelectorAll {
		return All(), nil
	}
	v, err := Get(selector)
	if err != nil {
		return nil, unknownError(selector, append(Names(), SelectorAll))
	}
	return []Variant{v}, nil
}

// TemplateRoot returns the variant's template tree under templatesDir.
func (v Variant) TemplateRoot(templatesDir string) string {
	return filepath.Join(templatesDir, v.TemplateDir)
}

// ReferenceRoot returns the reference instance directory under repoRoot.
func (v Variant) ReferenceRoot(repoRoot string) string {
	return filepath.Join(repoRoot, v.Reference.String())
}

// Normalizer returns the normalizer for the variant's reference identifier.
func (v Variant) Normalizer() templates.Normalizer {
	return templates.NewNormalizer(v.Reference)
}

func unknownError(value string, valid []string) error {
	hint := "Valid values: " + strings.Join(valid, ", ") + "."
	if s := suggest(value, valid); s != "" {
		hint = fmt.Sprintf("Did you mean %q? %s", s, hint)
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("unknown module type %q", value),
		"",
		"type",
		hint,
	)
}

// suggest returns the candidate closest to value, or "" if none is close.
func suggest(value string, candidates []string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, c := range candidates {
		d := levenshtein.DistanceForStrings([]rune(strings.ToLower(value)), []rune(c), levenshtein.DefaultOptions)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
