package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".daggerx/templates", cfg.TemplatesDir)
	assert.Equal(t, "Excoriate", cfg.Owner)
	assert.Nil(t, cfg.Log.Timestamps)
	assert.Contains(t, cfg.Discovery.Ignore, "**/.git")
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills unset fields", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()
		assert.Equal(t, DefaultTemplatesDir, cfg.TemplatesDir)
		assert.Equal(t, DefaultOwner, cfg.Owner)
		assert.Equal(t, DefaultIgnore(), cfg.Discovery.Ignore)
	})

	t.Run("keeps set fields", func(t *testing.T) {
		orig := &Config{
			TemplatesDir: "templates",
			Owner:        "acme",
			Discovery:    DiscoveryConfig{Ignore: []string{"vendor"}},
		}
		cfg := orig.WithDefaults()
		assert.Equal(t, "templates", cfg.TemplatesDir)
		assert.Equal(t, "acme", cfg.Owner)
		assert.Equal(t, []string{"vendor"}, cfg.Discovery.Ignore)
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		orig := &Config{}
		_ = orig.WithDefaults()
		assert.Empty(t, orig.TemplatesDir)
	})
}
