// Package discovery finds the dagger modules of a repository.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/manifest"
)

// FindModules returns every directory under root holding a dagger.json, as
// sorted slash-separated paths relative to root ("." for root itself).
// Paths matching an ignore pattern are not descended into.
func FindModules(fsys afero.Fs, root string, ignore []string) ([]string, error) {
	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	var modules []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if rel != "." && ignored(rel, ignore) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && info.Name() == manifest.FileName {
			modules = append(modules, filepath.ToSlash(filepath.Dir(rel)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s for modules: %w", root, err)
	}

	sort.Strings(modules)
	return modules, nil
}

func ignored(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
