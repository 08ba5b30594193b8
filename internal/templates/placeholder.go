// Package templates renders module template trees and abstracts concrete
// module names back into placeholder tokens.
package templates

import (
	"regexp"

	"github.com/daggerx/daggy/internal/naming"
)

// Placeholder is a recognized template token kind.
type Placeholder int

const (
	// PlaceholderTitle resolves to the title-concatenated form ("MyModule").
	PlaceholderTitle Placeholder = iota + 1

	// PlaceholderPackage resolves to the lowercase hyphenated form ("my-module").
	PlaceholderPackage

	// PlaceholderCamel resolves to the lower-camel form ("myModule").
	PlaceholderCamel

	// PlaceholderLowercase resolves to the plain lowercase form.
	PlaceholderLowercase
)

var placeholderKeys = map[Placeholder]string{
	PlaceholderTitle:     "module_name",
	PlaceholderPackage:   "module_name_pkg",
	PlaceholderCamel:     "module_name_camel",
	PlaceholderLowercase: "module_name_lowercase",
}

// tokenPattern matches any "{{ .key }}" token. Unknown keys are matched so
// that they can be left untouched as a whole.
var tokenPattern = regexp.MustCompile(`\{\{\s*\.([A-Za-z0-9_]+)\s*\}\}`)

// Placeholders returns all recognized placeholders in a stable order.
func Placeholders() []Placeholder {
	return []Placeholder{PlaceholderTitle, PlaceholderPackage, PlaceholderCamel, PlaceholderLowercase}
}

// ParsePlaceholder looks up the placeholder for a token key.
func ParsePlaceholder(key string) (Placeholder, bool) {
	for p, k := range placeholderKeys {
		if k == key {
			return p, true
		}
	}
	return 0, false
}

// Key returns the token key, e.g. "module_name_pkg".
func (p Placeholder) Key() string {
	return placeholderKeys[p]
}

// Token returns the canonical spelling of the token, e.g. "{{.module_name}}".
func (p Placeholder) Token() string {
	return "{{." + p.Key() + "}}"
}

// Resolve returns the concrete value of p for id.
func (p Placeholder) Resolve(id naming.Identifier) string {
	switch p {
	case PlaceholderTitle:
		return id.Title()
	case PlaceholderPackage:
		return id.Pkg()
	case PlaceholderCamel:
		return id.Camel()
	case PlaceholderLowercase:
		return id.Lower()
	default:
		return ""
	}
}

// RenderString replaces every recognized token in content with its value for
// id. Unknown tokens and all other text pass through unchanged. Tokens are
// resolved in a single pass, so the result does not depend on token order.
func RenderString(content string, id naming.Identifier) string {
	return replaceTokens(content, func(p Placeholder) string {
		return p.Resolve(id)
	})
}

// CanonicalizeTokens rewrites recognized tokens to their canonical spelling,
// dropping any whitespace inside the braces.
func CanonicalizeTokens(content string) string {
	return replaceTokens(content, Placeholder.Token)
}

func replaceTokens(content string, value func(Placeholder) string) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(token string) string {
		m := tokenPattern.FindStringSubmatch(token)
		p, ok := ParsePlaceholder(m[1])
		if !ok {
			return token
		}
		return value(p)
	})
}
