package mod

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/daggerx/daggy/internal/errors"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestInspectCmd_Text(t *testing.T) {
	cfg, _ := newGlobalConfig(t)
	setupRepo(t, cfg.Fs)

	out, err := execute(t, cfg, "", "inspect")
	require.NoError(t, err)

	out = stripAnsi(out)
	assert.Contains(t, out, "Changes for full module:")
	assert.Contains(t, out, "Added: apis.go")
	assert.Contains(t, out, "Modified: main.go")
	assert.Contains(t, out, "Summary: 1 added, 1 modified")
	assert.Contains(t, out, "Changes for light module:")
	assert.Contains(t, out, "No changes detected.")
	assert.NotContains(t, out, "Diff:")
}

func TestInspectCmd_Detailed(t *testing.T) {
	cfg, _ := newGlobalConfig(t)
	setupRepo(t, cfg.Fs)

	out, err := execute(t, cfg, "", "inspect", "--type", "full", "--detailed")
	require.NoError(t, err)

	out = stripAnsi(out)
	assert.Contains(t, out, "Diff:")
	assert.Contains(t, out, "+type ModuleTemplate struct{ Ctr string }")
	assert.NotContains(t, out, "light")
}

func TestInspectCmd_JSON(t *testing.T) {
	cfg, _ := newGlobalConfig(t)
	setupRepo(t, cfg.Fs)

	out, err := execute(t, cfg, "", "inspect", "-o", "json")
	require.NoError(t, err)

	var results []struct {
		Type     string `json:"type"`
		Instance string `json:"instance"`
		Changes  []struct {
			Path         string `json:"path"`
			TemplatePath string `json:"templatePath"`
			Status       string `json:"status"`
		} `json:"changes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "full", results[0].Type)
	assert.Equal(t, "/repo/module-template", results[0].Instance)
	require.Len(t, results[0].Changes, 2)
	assert.Equal(t, "apis.go", results[0].Changes[0].Path)
	assert.Equal(t, "module/apis.go.tmpl", results[0].Changes[0].TemplatePath)
	assert.Equal(t, "added", results[0].Changes[0].Status)
	assert.Equal(t, "modified", results[0].Changes[1].Status)

	assert.Equal(t, "light", results[1].Type)
	assert.Empty(t, results[1].Changes)
}

func TestInspectCmd_Errors(t *testing.T) {
	t.Run("invalid output format", func(t *testing.T) {
		cfg, _ := newGlobalConfig(t)
		setupRepo(t, cfg.Fs)
		_, err := execute(t, cfg, "", "inspect", "-o", "table")
		assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	})

	t.Run("unknown type", func(t *testing.T) {
		cfg, _ := newGlobalConfig(t)
		setupRepo(t, cfg.Fs)
		_, err := execute(t, cfg, "", "inspect", "--type", "lite")
		assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	})

	t.Run("missing templates", func(t *testing.T) {
		cfg, _ := newGlobalConfig(t)
		setupRepo(t, cfg.Fs)
		cfg.TemplatesDir = "/elsewhere"
		_, err := execute(t, cfg, "", "inspect")
		assert.Equal(t, oerrors.ExitNotFound, exitCode(t, err))
	})
}
