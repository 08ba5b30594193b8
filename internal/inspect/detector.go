package inspect

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/templates"
	"github.com/daggerx/daggy/internal/textdiff"
	"github.com/daggerx/daggy/internal/variant"
)

const (
	sourceExt     = ".go"
	generatedFile = "dagger.gen.go"
	internalDir   = "internal"
)

// Options configures a Detector.
type Options struct {
	// Detailed attaches a diff payload to every record.
	Detailed bool
	// Scopes are the directory pairs compared. Empty means the default layout.
	Scopes []variant.Scope
	// Normalizer abstracts the reference instance's concrete names.
	Normalizer templates.Normalizer
}

// Detector compares an instance tree with its template tree. It holds no
// state between calls.
type Detector struct {
	fs   afero.Fs
	opts Options
}

// NewDetector returns a Detector reading from fsys.
func NewDetector(fsys afero.Fs, opts Options) *Detector {
	if len(opts.Scopes) == 0 {
		opts.Scopes = variant.DefaultLayout().Scopes
	}
	return &Detector{fs: fsys, opts: opts}
}

// IsRelevant reports whether the instance-relative path takes part in the
// comparison: a Go source file that is neither generated nor internal.
func IsRelevant(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	if path.Ext(relPath) != sourceExt || path.Base(relPath) == generatedFile {
		return false
	}
	for _, segment := range strings.Split(path.Dir(relPath), "/") {
		if segment == internalDir {
			return false
		}
	}
	return true
}

// Detect returns the changes of the instance at instanceRoot relative to the
// template tree at templateRoot, sorted by path. Scopes missing on either
// side are skipped.
func (d *Detector) Detect(instanceRoot, templateRoot string) ([]ChangeRecord, error) {
	var records []ChangeRecord

	for _, scope := range d.opts.Scopes {
		instanceDir := filepath.Join(instanceRoot, filepath.FromSlash(scope.Instance))
		templateDir := filepath.Join(templateRoot, filepath.FromSlash(scope.Template))

		ok, err := d.bothDirs(instanceDir, templateDir)
		if err != nil {
			return nil, err
		}
		if !ok {
			output.Debug("skipping scope", "instance", scope.Instance, "template", scope.Template)
			continue
		}

		found, err := d.detectScope(scope, instanceDir, templateDir)
		if err != nil {
			return nil, err
		}
		records = append(records, found...)
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Path < records[j].Path })
	return records, nil
}

func (d *Detector) bothDirs(dirs ...string) (bool, error) {
	for _, dir := range dirs {
		ok, err := afero.IsDir(d.fs, dir)
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, fmt.Errorf("checking %s: %w", dir, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (d *Detector) detectScope(scope variant.Scope, instanceDir, templateDir string) ([]ChangeRecord, error) {
	var records []ChangeRecord

	instanceFiles, err := d.files(instanceDir)
	if err != nil {
		return nil, err
	}

	for _, name := range instanceFiles {
		rel := path.Join(scope.Instance, name)
		if !IsRelevant(rel) {
			continue
		}

		record := ChangeRecord{
			Path:         rel,
			TemplatePath: path.Join(scope.Template, name+templates.TemplateSuffix),
		}

		instance, err := d.read(filepath.Join(instanceDir, name))
		if err != nil {
			return nil, err
		}

		templatePath := filepath.Join(templateDir, name+templates.TemplateSuffix)
		exists, err := afero.Exists(d.fs, templatePath)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", templatePath, err)
		}

		if !exists {
			record.Status = Added
			if d.opts.Detailed {
				record.Diff = instance
			}
			records = append(records, record)
			continue
		}

		template, err := d.read(templatePath)
		if err != nil {
			return nil, err
		}

		normInstance := d.opts.Normalizer.Normalize(instance)
		normTemplate := d.opts.Normalizer.Normalize(template)
		if normInstance == normTemplate {
			continue
		}

		record.Status = Modified
		if d.opts.Detailed {
			record.Diff = textdiff.Format(normTemplate, normInstance)
		}
		records = append(records, record)
	}

	templateFiles, err := d.files(templateDir)
	if err != nil {
		return nil, err
	}

	for _, name := range templateFiles {
		stripped, ok := strings.CutSuffix(name, templates.TemplateSuffix)
		if !ok {
			continue
		}

		rel := path.Join(scope.Instance, stripped)
		exists, err := afero.Exists(d.fs, filepath.Join(instanceDir, stripped))
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", rel, err)
		}
		if exists {
			continue
		}

		record := ChangeRecord{
			Path:         rel,
			TemplatePath: path.Join(scope.Template, name),
			Status:       Deleted,
		}
		if d.opts.Detailed {
			raw, err := d.read(filepath.Join(templateDir, name))
			if err != nil {
				return nil, err
			}
			record.Diff = raw
		}
		records = append(records, record)
	}

	return records, nil
}

// files lists the regular files directly inside dir.
func (d *Detector) files(dir string) ([]string, error) {
	entries, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Mode().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (d *Detector) read(name string) (string, error) {
	data, err := afero.ReadFile(d.fs, name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}
