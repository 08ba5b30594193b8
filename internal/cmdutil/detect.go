package cmdutil

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/cmdtypes"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/inspect"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/variant"
)

// VariantChanges is the detection result for one variant.
type VariantChanges struct {
	Variant      variant.Variant        `json:"-" yaml:"-"`
	Type         string                 `json:"type" yaml:"type"`
	InstanceRoot string                 `json:"instance" yaml:"instance"`
	TemplateRoot string                 `json:"template" yaml:"template"`
	Changes      []inspect.ChangeRecord `json:"changes" yaml:"changes"`
}

// DetectVariant compares the variant's reference module with its template
// tree. A missing repository, reference module or template tree is a
// not-found error.
func DetectVariant(cfg *cmdtypes.GlobalConfig, v variant.Variant, detailed bool) (*VariantChanges, error) {
	if err := RequireRepo(cfg); err != nil {
		return nil, err
	}

	result := &VariantChanges{
		Variant:      v,
		Type:         v.Name,
		InstanceRoot: v.ReferenceRoot(cfg.RepoRoot),
		TemplateRoot: v.TemplateRoot(cfg.TemplatesDir),
	}

	if err := requireDir(cfg.Fs, result.InstanceRoot, "reference module for the "+v.Name+" module type not found",
		"Create it with 'daggy mod create "+v.Reference.String()+" --type "+v.Name+"'."); err != nil {
		return nil, err
	}
	if err := requireDir(cfg.Fs, result.TemplateRoot, "templates for the "+v.Name+" module type not found",
		"Set --templates-dir, DAGGY_TEMPLATES_DIR or templatesDir in the config file."); err != nil {
		return nil, err
	}

	output.Debug("detecting changes",
		"type", v.Name,
		"instance", result.InstanceRoot,
		"template", result.TemplateRoot,
		"detailed", detailed,
	)

	detector := inspect.NewDetector(cfg.Fs, inspect.Options{
		Detailed:   detailed,
		Scopes:     variant.DefaultLayout().Scopes,
		Normalizer: v.Normalizer(),
	})

	changes, err := detector.Detect(result.InstanceRoot, result.TemplateRoot)
	if err != nil {
		return nil, fmt.Errorf("detecting changes for %s: %w", v.Name, err)
	}
	result.Changes = changes

	counts := inspect.Count(changes)
	output.Debug("changes detected",
		"type", v.Name,
		"added", counts[inspect.Added],
		"modified", counts[inspect.Modified],
		"deleted", counts[inspect.Deleted],
	)

	return result, nil
}

// RequireRepo fails with a not-found error outside a git repository.
func RequireRepo(cfg *cmdtypes.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	if cfg.RepoRoot == "" {
		return oerrors.NewNotFoundError(
			"not inside a git repository",
			"",
			"Run daggy from within the daggerverse repository.",
		)
	}
	return nil
}

func requireDir(fsys afero.Fs, dir, message, hint string) error {
	ok, err := afero.DirExists(fsys, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !ok {
		return oerrors.NewNotFoundError(message, dir, hint)
	}
	return nil
}

// ChangeItems converts records for output.RenderChanges.
func ChangeItems(records []inspect.ChangeRecord) []output.ChangeItem {
	items := make([]output.ChangeItem, len(records))
	for i, r := range records {
		items[i] = output.ChangeItem{Status: r.Status.String(), Path: r.Path, Diff: r.Diff}
	}
	return items
}
