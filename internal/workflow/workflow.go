// Package workflow generates the per-module GitHub Actions workflow.
package workflow

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/daggerx/daggy/internal/naming"
	"github.com/daggerx/daggy/internal/templates"
)

const (
	// Dir is the workflow directory relative to the repository root.
	Dir = ".github/workflows"

	// TemplateName is the CI template path relative to the templates directory.
	TemplateName = "github/workflows/mod-template-ci.yaml.tmpl"
)

// FileName returns the workflow file name for the module id.
func FileName(id naming.Identifier) string {
	return "ci-mod-" + id.String() + ".yaml"
}

// Path returns the workflow path for id under repoRoot.
func Path(repoRoot string, id naming.Identifier) string {
	return filepath.Join(repoRoot, filepath.FromSlash(Dir), FileName(id))
}

// Generate renders the workflow template at templatePath for id and writes
// it to outputPath. The rendered workflow must be valid YAML.
func Generate(fsys afero.Fs, templatePath, outputPath string, id naming.Identifier) error {
	data, err := afero.ReadFile(fsys, templatePath)
	if err != nil {
		return fmt.Errorf("reading workflow template %s: %w", templatePath, err)
	}

	rendered := templates.RenderString(string(data), id)

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(rendered), &node); err != nil {
		return fmt.Errorf("rendered workflow for %s is not valid YAML: %w", id, err)
	}

	if err := fsys.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(outputPath), err)
	}
	if err := afero.WriteFile(fsys, outputPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
