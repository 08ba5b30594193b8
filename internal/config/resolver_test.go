package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTemplatesDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvTemplatesDir, "/env/templates")

		got := ResolveTemplatesDir("/flag/templates", &Config{TemplatesDir: "file/templates"})

		assert.Equal(t, "/flag/templates", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/templates", got.Shadowed[SourceEnv])
		assert.Equal(t, "file/templates", got.Shadowed[SourceConfig])
		assert.Equal(t, DefaultTemplatesDir, got.Shadowed[SourceDefault])
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv(EnvTemplatesDir, "/env/templates")

		got := ResolveTemplatesDir("", &Config{TemplatesDir: "file/templates"})

		assert.Equal(t, "/env/templates", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
		assert.NotContains(t, got.Shadowed, SourceFlag)
	})

	t.Run("config value merged from env is attributed to env", func(t *testing.T) {
		t.Setenv(EnvTemplatesDir, "/env/templates")

		got := ResolveTemplatesDir("", &Config{TemplatesDir: "/env/templates"})

		assert.Equal(t, SourceEnv, got.Source)
		assert.NotContains(t, got.Shadowed, SourceConfig)
	})

	t.Run("config fallback", func(t *testing.T) {
		t.Setenv(EnvTemplatesDir, "")

		got := ResolveTemplatesDir("", &Config{TemplatesDir: "file/templates"})

		assert.Equal(t, "file/templates", got.Value)
		assert.Equal(t, SourceConfig, got.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvTemplatesDir, "")

		got := ResolveTemplatesDir("", nil)

		assert.Equal(t, DefaultTemplatesDir, got.Value)
		assert.Equal(t, SourceDefault, got.Source)
		assert.Empty(t, got.Shadowed)
	})
}

func TestResolveOwner(t *testing.T) {
	t.Setenv(EnvOwner, "")

	assert.Equal(t, "acme", ResolveOwner("acme", nil).Value)
	assert.Equal(t, "corp", ResolveOwner("", &Config{Owner: "corp"}).Value)
	assert.Equal(t, DefaultOwner, ResolveOwner("", &Config{}).Value)
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/daggy.yaml")
		got := ResolveConfigPath("/flag/daggy.yaml", "/repo")
		assert.Equal(t, "/flag/daggy.yaml", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/daggy.yaml", got.Shadowed[SourceEnv])
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/daggy.yaml")
		got := ResolveConfigPath("", "/repo")
		assert.Equal(t, "/env/daggy.yaml", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
	})

	t.Run("default under repo root", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		got := ResolveConfigPath("", "/repo")
		assert.Equal(t, filepath.Join("/repo", ".daggerx", "daggy.yaml"), got.Value)
		assert.Equal(t, SourceDefault, got.Source)
	})

	t.Run("no repo root and nothing set", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		got := ResolveConfigPath("", "")
		assert.Empty(t, got.Value)
		assert.Empty(t, got.Source)
	})
}
