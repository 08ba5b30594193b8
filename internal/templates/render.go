package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/naming"
)

// TemplateSuffix marks files whose content is rendered on instantiation.
// Files without it are copied byte-for-byte.
const TemplateSuffix = ".tmpl"

// RenderOptions configures Render.
type RenderOptions struct {
	// Exclude lists entries to skip. A pattern matches either the base name
	// of an entry or, as a doublestar glob, its slash-separated path relative
	// to the template root. Excluded directories are skipped entirely.
	Exclude []string
}

func (o RenderOptions) validate() error {
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

func (o RenderOptions) excluded(relPath string) bool {
	slashPath := filepath.ToSlash(relPath)
	name := filepath.Base(relPath)
	for _, pattern := range o.Exclude {
		if pattern == name {
			return true
		}
		if ok, _ := doublestar.Match(pattern, slashPath); ok {
			return true
		}
	}
	return false
}

// Render instantiates the template tree at templateRoot into destRoot for id.
// Directory structure is preserved, ".tmpl" files are rendered and stored
// without the suffix, and existing destination files are overwritten.
// It returns the created files relative to destRoot, slash-separated and sorted.
func Render(fsys afero.Fs, templateRoot, destRoot string, id naming.Identifier, opts RenderOptions) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	info, err := fsys.Stat(templateRoot)
	if err != nil {
		return nil, fmt.Errorf("reading template root %s: %w", templateRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template root %s is not a directory", templateRoot)
	}

	var createdFiles []string

	err = afero.Walk(fsys, templateRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return err
		}

		if relPath == "." {
			return fsys.MkdirAll(destRoot, 0o755)
		}

		if opts.excluded(relPath) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		targetPath := filepath.Join(destRoot, relPath)

		if info.IsDir() {
			return fsys.MkdirAll(targetPath, 0o755)
		}

		content, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		if strings.HasSuffix(relPath, TemplateSuffix) {
			content = []byte(RenderString(string(content), id))
			targetPath = strings.TrimSuffix(targetPath, TemplateSuffix)
			relPath = strings.TrimSuffix(relPath, TemplateSuffix)
		}

		if err := fsys.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		if err := afero.WriteFile(fsys, targetPath, content, info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", targetPath, err)
		}

		createdFiles = append(createdFiles, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(createdFiles)
	return createdFiles, nil
}

// CopyTree copies the directory tree at src into dst byte-for-byte, creating
// missing directories and overwriting existing files. It returns the copied
// files relative to src, slash-separated.
func CopyTree(fsys afero.Fs, src, dst string) ([]string, error) {
	var copied []string

	err := afero.Walk(fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		targetPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return fsys.MkdirAll(targetPath, 0o755)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		content, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := afero.WriteFile(fsys, targetPath, content, info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", targetPath, err)
		}

		copied = append(copied, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return copied, nil
}
