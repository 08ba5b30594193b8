package cmdutil

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daggerx/daggy/internal/cmdtypes"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/inspect"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/testutil"
	"github.com/daggerx/daggy/internal/variant"
)

func globalConfig(fsys afero.Fs) *cmdtypes.GlobalConfig {
	return &cmdtypes.GlobalConfig{
		Fs:           fsys,
		RepoRoot:     "/repo",
		TemplatesDir: "/repo/.daggerx/templates",
	}
}

func TestDetectVariant(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteTree(t, fsys, "/repo", map[string]string{
		"module-template/main.go":                         "type ModuleTemplate struct{}\n",
		"module-template/extra.go":                        "package main\n",
		".daggerx/templates/mod-full/module/main.go.tmpl": "type {{.module_name}} struct{}\n",
	})

	result, err := DetectVariant(globalConfig(fsys), variant.Default(), false)
	require.NoError(t, err)

	assert.Equal(t, "full", result.Type)
	assert.Equal(t, "/repo/module-template", result.InstanceRoot)
	assert.Equal(t, "/repo/.daggerx/templates/mod-full", result.TemplateRoot)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "extra.go", result.Changes[0].Path)
	assert.Equal(t, inspect.Added, result.Changes[0].Status)
}

func TestDetectVariant_NotFound(t *testing.T) {
	fsys := afero.NewMemMapFs()
	light, err := variant.Get("light")
	require.NoError(t, err)

	_, err = DetectVariant(globalConfig(fsys), light, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "/repo/module-template-light", detail.Location)
	assert.Contains(t, detail.Hint, "daggy mod create module-template-light --type light")

	require.NoError(t, fsys.MkdirAll("/repo/module-template-light", 0o755))
	_, err = DetectVariant(globalConfig(fsys), light, false)
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "/repo/.daggerx/templates/mod-light", detail.Location)

	cfg := globalConfig(fsys)
	cfg.RepoRoot = ""
	_, err = DetectVariant(cfg, light, false)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestChangeItems(t *testing.T) {
	items := ChangeItems([]inspect.ChangeRecord{
		{Path: "main.go", Status: inspect.Modified, Diff: "+x\n"},
		{Path: "old.go", Status: inspect.Deleted},
	})

	assert.Equal(t, []output.ChangeItem{
		{Status: output.StatusModified, Path: "main.go", Diff: "+x\n"},
		{Status: output.StatusDeleted, Path: "old.go"},
	}, items)
}
