package discovery

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daggerx/daggy/internal/config"
	"github.com/daggerx/daggy/internal/testutil"
)

func TestFindModules(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteTree(t, fsys, "/repo", map[string]string{
		"dagger.json":                             "{}",
		"module-template/dagger.json":             "{}",
		"module-template/main.go":                 "package main",
		"module-template/tests/dagger.json":       "{}",
		"module-template/examples/go/dagger.json": "{}",
		"gotest/dagger.json":                      "{}",
		"gotest/node_modules/pkg/dagger.json":     "{}",
		".git/dagger.json":                        "{}",
		".daggerx/templates/mod-full/dagger.json": "{}",
		"docs/README.md":                          "docs",
	})

	got, err := FindModules(fsys, "/repo", config.DefaultIgnore())
	require.NoError(t, err)

	assert.Equal(t, []string{
		".",
		"gotest",
		"module-template",
		"module-template/examples/go",
		"module-template/tests",
	}, got)
}

func TestFindModules_NoIgnore(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteTree(t, fsys, "/repo", map[string]string{
		".git/dagger.json": "{}",
	})

	got, err := FindModules(fsys, "/repo", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{".git"}, got)
}

func TestFindModules_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := FindModules(fsys, "/missing", nil)
	assert.Error(t, err)

	require.NoError(t, fsys.MkdirAll("/repo", 0o755))
	_, err = FindModules(fsys, "/repo", []string{"[unclosed"})
	assert.Error(t, err)
}
