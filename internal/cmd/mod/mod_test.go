package mod

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/config"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/testutil"
)

const (
	repoRoot     = "/repo"
	templatesDir = "/repo/.daggerx/templates"
)

// recordingRunner records commands as "dir: name args" and fails those
// whose directory contains failDir.
type recordingRunner struct {
	calls   []string
	failDir string
}

func (r *recordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, dir+": "+name+" "+strings.Join(args, " "))
	if r.failDir != "" && strings.Contains(dir, r.failDir) {
		return oerrors.NewToolchainError("exit status 1", map[string]string{"Dir": dir}, "")
	}
	return nil
}

func newGlobalConfig(t *testing.T) (*cmdtypes.GlobalConfig, *recordingRunner) {
	t.Helper()
	runner := &recordingRunner{}
	return &cmdtypes.GlobalConfig{
		Config:       config.DefaultConfig(),
		Fs:           afero.NewMemMapFs(),
		Runner:       runner,
		RepoRoot:     repoRoot,
		TemplatesDir: templatesDir,
		Owner:        "Excoriate",
	}, runner
}

// execute runs the mod command group with args and stdin, returning stdout.
func execute(t *testing.T, cfg *cmdtypes.GlobalConfig, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewModCmd(cfg)
	c.SetArgs(args)
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&out)
	err := c.Execute()
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
	return exitErr.Code
}

// setupRepo writes both template trees and both reference modules. The
// light reference module matches its templates; the full one has an extra
// file and a modified main.go.
func setupRepo(t *testing.T, fsys afero.Fs) {
	t.Helper()
	testutil.WriteTree(t, fsys, templatesDir, map[string]string{
		"mod-full/module/main.go.tmpl":                 "package main\n\ntype {{.module_name}} struct{}\n",
		"mod-full/tests/main.go.tmpl":                  "package main\n\n// Tests for {{.module_name_pkg}}\n",
		"mod-full/tests/testdata/common/test-file.yml": "name: fixture\n",
		"mod-full/examples/go/main.go.tmpl":            "package main\n",
		"mod-light/module/main.go.tmpl":                "package main\n\ntype {{.module_name}} struct{}\n",
		"README.md":                                    "# [@MODULE_NAME]\n",
		"LICENSE":                                      "MIT",
		"github/workflows/mod-template-ci.yaml.tmpl":   "name: {{.module_name_pkg}}\non: push\n",
	})
	testutil.WriteTree(t, fsys, repoRoot, map[string]string{
		"module-template/main.go":                             "package main\n\ntype ModuleTemplate struct{ Ctr string }\n",
		"module-template/apis.go":                             "package main\n\n// ModuleTemplate API\n",
		"module-template/tests/main.go":                       "package main\n\n// Tests for module-template\n",
		"module-template/tests/testdata/common/test-file.yml": "name: fixture v2\n",
		"module-template/examples/go/main.go":                 "package main\n",
		"module-template-light/main.go":                       "package main\n\ntype ModuleTemplateLight struct{}\n",
	})
}
