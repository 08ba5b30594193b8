// Package manifest edits the dagger.json module manifest.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/output"
)

// FileName is the manifest file dagger creates for every module.
const FileName = "dagger.json"

// excludedEntries are repository-root paths no module should upload to the
// engine.
var excludedEntries = []string{
	".direnv",
	".devenv",
	".vscode",
	".idea",
	".trunk",
	"go.work",
	"go.work.sum",
}

// Excludes returns the exclude list for a module nested depth directories
// below the repository root.
func Excludes(depth int) []string {
	prefix := strings.Repeat("../", depth)
	out := make([]string, len(excludedEntries))
	for i, e := range excludedEntries {
		out[i] = prefix + e
	}
	return out
}

// UpdateExcludes replaces the "exclude" list of the manifest at path,
// keeping every other field.
func UpdateExcludes(fsys afero.Fs, path string, excludes []string) error {
	before, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(before, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	doc["exclude"] = excludes

	after, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, after, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if report, err := Diff(before, after); err != nil {
		output.Debug("could not diff manifest", "path", path, "error", err)
	} else if report != "" {
		output.Debug("updated manifest", "path", path, "diff", report)
	}
	return nil
}

// Excluded returns the "exclude" list of the manifest at path.
func Excluded(fsys afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc struct {
		Exclude []string `json:"exclude"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Exclude, nil
}

func encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
