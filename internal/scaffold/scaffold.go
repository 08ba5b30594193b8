// Package scaffold creates a new module from a variant's template tree.
package scaffold

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/manifest"
	"github.com/daggerx/daggy/internal/naming"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/templates"
	"github.com/daggerx/daggy/internal/toolchain"
	"github.com/daggerx/daggy/internal/variant"
	"github.com/daggerx/daggy/internal/workflow"
)

// Options configures one Create call.
type Options struct {
	// Name is the new module's identifier, validated by Create.
	Name string
	// Variant selects the template tree.
	Variant variant.Variant
	// RepoRoot is the repository the module is created in.
	RepoRoot string
	// TemplatesDir holds the variant template trees, README, LICENSE and the
	// CI workflow template.
	TemplatesDir string
	// Owner is the GitHub owner in the generated go.mod module paths.
	Owner string
	// SkipDagger skips every dagger invocation.
	SkipDagger bool
}

// Result describes a created module.
type Result struct {
	// ModuleDir is the absolute module directory.
	ModuleDir string
	// Files are the created files relative to ModuleDir, slash-separated.
	Files []string
	// Workflow is the generated CI workflow path.
	Workflow string
}

// component is one dagger module of the created tree.
type component struct {
	scope variant.Scope
	// daggerName is the name passed to "dagger init".
	daggerName string
	// install is the dependency "dagger install" adds, empty for none.
	install string
}

// Scaffolder creates modules. Every external command runs with an explicit
// working directory.
type Scaffolder struct {
	fs     afero.Fs
	runner toolchain.Runner
	dagger *toolchain.Dagger
	layout variant.Layout
}

// New returns a Scaffolder writing to fsys and running tools through runner.
func New(fsys afero.Fs, runner toolchain.Runner) *Scaffolder {
	return &Scaffolder{
		fs:     fsys,
		runner: runner,
		dagger: toolchain.NewDagger(runner),
		layout: variant.DefaultLayout(),
	}
}

// Create scaffolds the module described by opts. Input is validated before
// anything is written; after that the first failure aborts and the partial
// module stays on disk.
func (s *Scaffolder) Create(ctx context.Context, opts Options) (*Result, error) {
	id, moduleDir, templateRoot, err := s.validate(opts)
	if err != nil {
		return nil, err
	}

	log := output.ModuleLogger(id.String())
	log.Info("creating module", "type", opts.Variant.Name, "path", moduleDir)

	result := &Result{ModuleDir: moduleDir}

	for _, c := range s.components(id) {
		files, err := s.createComponent(ctx, c, id, moduleDir, templateRoot, opts)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, files...)
	}

	docs, err := s.copyDocs(id, opts.TemplatesDir, moduleDir)
	if err != nil {
		return result, err
	}
	result.Files = append(result.Files, docs...)

	result.Workflow = workflow.Path(opts.RepoRoot, id)
	templatePath := filepath.Join(opts.TemplatesDir, filepath.FromSlash(workflow.TemplateName))
	if err := workflow.Generate(s.fs, templatePath, result.Workflow, id); err != nil {
		return result, err
	}
	log.Info("generated workflow", "path", result.Workflow)

	for _, c := range s.components(id) {
		dir := filepath.Join(moduleDir, filepath.FromSlash(c.scope.Instance))
		if err := s.goFmt(ctx, dir); err != nil {
			return result, err
		}
	}

	sort.Strings(result.Files)
	log.Info("module created")
	return result, nil
}

func (s *Scaffolder) validate(opts Options) (naming.Identifier, string, string, error) {
	id, err := naming.Parse(opts.Name)
	if err != nil {
		return "", "", "", oerrors.NewValidationError(err.Error(), "", "name",
			"Module names use letters, digits and single hyphens, e.g. my-module.")
	}

	if opts.Owner == "" {
		return "", "", "", oerrors.NewValidationError("module owner cannot be empty", "", "owner",
			"Set --owner, DAGGY_OWNER or owner in the config file.")
	}

	moduleDir := filepath.Join(opts.RepoRoot, id.String())
	exists, err := afero.Exists(s.fs, moduleDir)
	if err != nil {
		return "", "", "", fmt.Errorf("checking %s: %w", moduleDir, err)
	}
	if exists {
		return "", "", "", oerrors.NewValidationError(
			fmt.Sprintf("module %q already exists", id),
			moduleDir, "name",
			"Choose another name or remove the existing directory.",
		)
	}

	templateRoot := opts.Variant.TemplateRoot(opts.TemplatesDir)
	ok, err := afero.DirExists(s.fs, templateRoot)
	if err != nil {
		return "", "", "", fmt.Errorf("checking %s: %w", templateRoot, err)
	}
	if !ok {
		return "", "", "", oerrors.NewNotFoundError(
			fmt.Sprintf("templates for the %s module type not found", opts.Variant.Name),
			templateRoot,
			"Set --templates-dir, DAGGY_TEMPLATES_DIR or templatesDir in the config file.",
		)
	}

	return id, moduleDir, templateRoot, nil
}

// components lists the module, its tests module and its Go examples module.
func (s *Scaffolder) components(id naming.Identifier) []component {
	var out []component
	for _, scope := range s.layout.Scopes {
		c := component{scope: scope, daggerName: path.Base(scope.Instance)}
		if scope.Instance == "." {
			c.daggerName = id.String()
		} else {
			c.install = strings.Repeat("../", depth(scope.Instance))
		}
		out = append(out, c)
	}
	return out
}

func (s *Scaffolder) createComponent(ctx context.Context, c component, id naming.Identifier, moduleDir, templateRoot string, opts Options) ([]string, error) {
	log := output.ModuleLogger(id.String())
	dir := filepath.Join(moduleDir, filepath.FromSlash(c.scope.Instance))
	templateDir := filepath.Join(templateRoot, filepath.FromSlash(c.scope.Template))

	log.Info("initializing", "component", c.daggerName, "dir", dir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	if !opts.SkipDagger {
		if err := s.dagger.Init(ctx, dir, c.daggerName); err != nil {
			return nil, err
		}
	}

	rendered, err := templates.Render(s.fs, templateDir, dir, id, templates.RenderOptions{
		Exclude: []string{s.layout.FixtureDir},
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", c.scope.Template, err)
	}

	fixtures, err := s.copyFixtures(templateDir, dir)
	if err != nil {
		return nil, err
	}

	if err := s.updateManifest(dir, c); err != nil {
		return nil, err
	}

	if err := s.setModulePath(dir, c, id, opts.Owner); err != nil {
		return nil, err
	}

	if !opts.SkipDagger {
		if c.install != "" {
			if err := s.dagger.Install(ctx, dir, c.install); err != nil {
				return nil, err
			}
		}
		if err := s.dagger.Develop(ctx, dir); err != nil {
			return nil, err
		}
	}

	var files []string
	for _, f := range append(rendered, fixtures...) {
		files = append(files, path.Join(c.scope.Instance, f))
	}
	return files, nil
}

// copyFixtures copies the component's fixture directory verbatim.
func (s *Scaffolder) copyFixtures(templateDir, dir string) ([]string, error) {
	src := filepath.Join(templateDir, s.layout.FixtureDir)
	ok, err := afero.DirExists(s.fs, src)
	if err != nil || !ok {
		return nil, err
	}

	copied, err := templates.CopyTree(s.fs, src, filepath.Join(dir, s.layout.FixtureDir))
	if err != nil {
		return nil, fmt.Errorf("copying fixtures from %s: %w", src, err)
	}

	out := make([]string, len(copied))
	for i, f := range copied {
		out[i] = path.Join(s.layout.FixtureDir, f)
	}
	return out, nil
}

// updateManifest points the component's dagger.json excludes at the
// repository root.
func (s *Scaffolder) updateManifest(dir string, c component) error {
	manifestPath := filepath.Join(dir, manifest.FileName)
	ok, err := afero.Exists(s.fs, manifestPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", manifestPath, err)
	}
	if !ok {
		output.Debug("no manifest to update", "path", manifestPath)
		return nil
	}
	return manifest.UpdateExcludes(s.fs, manifestPath, manifest.Excludes(1+depth(c.scope.Instance)))
}

func (s *Scaffolder) setModulePath(dir string, c component, id naming.Identifier, owner string) error {
	goModPath := filepath.Join(dir, "go.mod")
	ok, err := afero.Exists(s.fs, goModPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", goModPath, err)
	}
	if !ok {
		output.Debug("no go.mod to update", "path", goModPath)
		return nil
	}
	return toolchain.SetModulePath(s.fs, goModPath, ModulePath(owner, id, c.scope.Instance))
}

func (s *Scaffolder) goFmt(ctx context.Context, dir string) error {
	ok, err := afero.Exists(s.fs, filepath.Join(dir, "go.mod"))
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !ok {
		output.Debug("skipping go fmt without go.mod", "dir", dir)
		return nil
	}
	return toolchain.GoFmt(ctx, s.runner, dir)
}

// ModulePath returns the Go module path of the component at scope (a
// slash-separated path relative to the module root).
func ModulePath(owner string, id naming.Identifier, scope string) string {
	return path.Join("github.com", owner, "daggerverse", id.String(), scope)
}

// depth counts the segments of a slash-separated relative path; "." is 0.
func depth(rel string) int {
	rel = path.Clean(rel)
	if rel == "." {
		return 0
	}
	return strings.Count(rel, "/") + 1
}
