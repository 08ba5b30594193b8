package templates

import (
	"strings"

	"github.com/daggerx/daggy/internal/naming"
)

// Normalizer abstracts the concrete name forms of one identifier back into
// placeholder tokens.
type Normalizer struct {
	id naming.Identifier
}

// NewNormalizer returns a Normalizer for the given reference identifier.
func NewNormalizer(id naming.Identifier) Normalizer {
	return Normalizer{id: id}
}

// Identifier returns the identifier this normalizer abstracts.
func (n Normalizer) Identifier() naming.Identifier {
	return n.id
}

// Normalize canonicalizes token spelling and then abstracts concrete forms.
// Applying it twice yields the same result as applying it once.
func (n Normalizer) Normalize(content string) string {
	return n.Abstract(CanonicalizeTokens(content))
}

// Abstract replaces every occurrence of the title form with the title token,
// then every occurrence of the package form with the package token. Text that
// is already inside a token is never rewritten.
func (n Normalizer) Abstract(content string) string {
	segments := splitTokens(content)

	for _, r := range n.replacements() {
		if r.concrete == "" {
			continue
		}
		segments = r.apply(segments)
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}

type replacement struct {
	concrete    string
	placeholder Placeholder
}

func (n Normalizer) replacements() []replacement {
	return []replacement{
		{concrete: n.id.Title(), placeholder: PlaceholderTitle},
		{concrete: n.id.Pkg(), placeholder: PlaceholderPackage},
	}
}

func (r replacement) apply(segments []segment) []segment {
	out := make([]segment, 0, len(segments))
	for _, s := range segments {
		if s.token || !strings.Contains(s.text, r.concrete) {
			out = append(out, s)
			continue
		}

		for i, part := range strings.Split(s.text, r.concrete) {
			if i > 0 {
				out = append(out, segment{text: r.placeholder.Token(), token: true})
			}
			if part != "" {
				out = append(out, segment{text: part})
			}
		}
	}
	return out
}

// segment is a run of content that is either a whole token or plain text.
type segment struct {
	text  string
	token bool
}

func splitTokens(content string) []segment {
	var segments []segment
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(content, -1) {
		if loc[0] > last {
			segments = append(segments, segment{text: content[last:loc[0]]})
		}
		segments = append(segments, segment{text: content[loc[0]:loc[1]], token: true})
		last = loc[1]
	}
	if last < len(content) {
		segments = append(segments, segment{text: content[last:]})
	}
	return segments
}
