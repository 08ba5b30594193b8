// Package naming converts hyphenated module identifiers into the name forms
// that template placeholders resolve to.
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier is a hyphen-delimited module identifier (e.g., "my-module").
// The derived forms are computed on demand and never stored.
type Identifier string

// Parse validates s and returns it as an Identifier.
func Parse(s string) (Identifier, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	return Identifier(s), nil
}

// Validate checks that s is a usable module identifier: non-empty, starting
// with a letter, made of letters, digits and single hyphens.
func Validate(s string) error {
	if s == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(first) {
		return fmt.Errorf("invalid module name %q: must start with a letter", s)
	}

	prevHyphen := false
	for _, r := range s {
		switch {
		case r == '-':
			if prevHyphen {
				return fmt.Errorf("invalid module name %q: contains consecutive hyphens", s)
			}
			prevHyphen = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			prevHyphen = false
		default:
			return fmt.Errorf("invalid module name %q: contains invalid character %q", s, r)
		}
	}

	if prevHyphen {
		return fmt.Errorf("invalid module name %q: must not end with a hyphen", s)
	}

	return nil
}

// String returns the identifier verbatim.
func (id Identifier) String() string { return string(id) }

// Title returns the concatenated title form ("my-module" -> "MyModule").
func (id Identifier) Title() string { return TitleConcatenated(string(id)) }

// Camel returns the lower-camel form ("my-module" -> "myModule").
func (id Identifier) Camel() string { return LowerCamel(string(id)) }

// Lower returns the lowercase form with hyphens retained.
func (id Identifier) Lower() string { return Lowercase(string(id)) }

// PackageSafe returns the lowercase form with hyphens replaced by underscores.
func (id Identifier) PackageSafe() string { return PackageSafe(string(id)) }

// Pkg returns the value of the package placeholder.
func (id Identifier) Pkg() string { return PackageName(string(id)) }

// TitleConcatenated capitalizes the first character of every hyphen-separated
// segment and concatenates the segments.
func TitleConcatenated(id string) string {
	if id == "" {
		return ""
	}

	var b strings.Builder
	for _, segment := range strings.Split(id, "-") {
		b.WriteString(Capitalize(segment))
	}
	return b.String()
}

// LowerCamel is TitleConcatenated with the first segment lowercased instead
// of capitalized.
func LowerCamel(id string) string {
	if id == "" {
		return ""
	}

	var b strings.Builder
	for i, segment := range strings.Split(id, "-") {
		if i == 0 {
			b.WriteString(Lowercase(segment))
			continue
		}
		b.WriteString(Capitalize(segment))
	}
	return b.String()
}

// Lowercase lowercases id, keeping hyphens.
func Lowercase(id string) string {
	if id == "" {
		return ""
	}
	return cases.Lower(language.Und).String(id)
}

// PackageSafe lowercases id and replaces hyphens with underscores.
func PackageSafe(id string) string {
	return strings.ReplaceAll(Lowercase(id), "-", "_")
}

// PackageName lowercases id, trims surrounding spaces and turns inner spaces
// into hyphens.
func PackageName(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(Lowercase(id)), " ", "-")
}

// Capitalize uppercases the first Unicode scalar of s and passes the rest
// through unchanged. Special casings may expand (e.g., "ß" -> "SS").
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
