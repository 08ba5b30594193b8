// Package updater writes detected instance changes back into a template tree.
package updater

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/inspect"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/templates"
	"github.com/daggerx/daggy/internal/variant"
)

// Updater applies change records to the template tree at TemplateRoot,
// reading instance content from InstanceRoot.
//
// Apply is not transactional: the first failure aborts the batch and leaves
// the records applied so far in place.
type Updater struct {
	Fs           afero.Fs
	InstanceRoot string
	TemplateRoot string
	// Normalizer abstracts the instance's concrete names into tokens.
	Normalizer templates.Normalizer
	// Layout selects the fixture directories mirrored after the records.
	Layout variant.Layout
}

// Result lists the template-relative paths touched by Apply.
type Result struct {
	Updated  []string `json:"updated,omitempty" yaml:"updated,omitempty"`
	Deleted  []string `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	Fixtures []string `json:"fixtures,omitempty" yaml:"fixtures,omitempty"`
}

// Apply writes Added and Modified records into the template tree with their
// concrete names abstracted, removes the templates of Deleted records, and
// then mirrors every scope's fixture directory byte-for-byte.
func (u *Updater) Apply(records []inspect.ChangeRecord) (Result, error) {
	var result Result
	log := output.ModuleLogger(u.Normalizer.Identifier().String())

	for _, r := range records {
		templatePath := filepath.Join(u.TemplateRoot, filepath.FromSlash(r.TemplatePath))

		switch r.Status {
		case inspect.Added, inspect.Modified:
			if err := u.write(r, templatePath); err != nil {
				return result, err
			}
			result.Updated = append(result.Updated, r.TemplatePath)
			log.Debug("updated template", "path", r.TemplatePath, "status", r.Status)

		case inspect.Deleted:
			if err := u.Fs.Remove(templatePath); err != nil && !errors.Is(err, os.ErrNotExist) {
				return result, fmt.Errorf("removing %s: %w", templatePath, err)
			}
			result.Deleted = append(result.Deleted, r.TemplatePath)
			log.Debug("deleted template", "path", r.TemplatePath)

		default:
			return result, fmt.Errorf("change record %s has unknown status %s", r.Path, r.Status)
		}
	}

	fixtures, err := u.syncFixtures()
	if err != nil {
		return result, err
	}
	result.Fixtures = fixtures

	return result, nil
}

func (u *Updater) write(r inspect.ChangeRecord, templatePath string) error {
	instancePath := filepath.Join(u.InstanceRoot, filepath.FromSlash(r.Path))

	content, err := afero.ReadFile(u.Fs, instancePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", instancePath, err)
	}

	if err := u.Fs.MkdirAll(filepath.Dir(templatePath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", templatePath, err)
	}

	abstracted := u.Normalizer.Abstract(string(content))
	if err := afero.WriteFile(u.Fs, templatePath, []byte(abstracted), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", templatePath, err)
	}
	return nil
}

// syncFixtures copies each scope's fixture directory from the instance into
// the template tree, overwriting existing files.
func (u *Updater) syncFixtures() ([]string, error) {
	if u.Layout.FixtureDir == "" {
		return nil, nil
	}

	var copied []string
	for _, scope := range u.Layout.Scopes {
		src := filepath.Join(u.InstanceRoot, filepath.FromSlash(scope.Instance), u.Layout.FixtureDir)
		ok, err := afero.DirExists(u.Fs, src)
		if err != nil {
			return copied, fmt.Errorf("checking %s: %w", src, err)
		}
		if !ok {
			continue
		}

		dstRel := path.Join(scope.Template, u.Layout.FixtureDir)
		files, err := templates.CopyTree(u.Fs, src, filepath.Join(u.TemplateRoot, filepath.FromSlash(dstRel)))
		if err != nil {
			return copied, fmt.Errorf("copying fixtures %s: %w", src, err)
		}
		for _, f := range files {
			copied = append(copied, path.Join(dstRel, f))
		}
	}
	return copied, nil
}
