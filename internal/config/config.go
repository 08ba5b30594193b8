// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// DiscoveryConfig controls how modules are found under the repository root.
type DiscoveryConfig struct {
	// Ignore holds doublestar patterns, relative to the repository root,
	// for directories that are never searched for dagger.json.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty" json:"ignore,omitempty"`
}

// Config represents the daggy configuration.
// Loaded from <repo>/.daggerx/daggy.yaml, validated against the embedded CUE schema.
type Config struct {
	// TemplatesDir is the directory holding the mod-full and mod-light
	// template trees, relative to the repository root unless absolute.
	// Env: DAGGY_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty" json:"templatesDir,omitempty"`

	// Owner is the GitHub owner used in generated Go module paths
	// (github.com/<owner>/daggerverse/<module>).
	// Env: DAGGY_OWNER
	Owner string `mapstructure:"owner" yaml:"owner,omitempty" json:"owner,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`

	// Discovery contains module discovery settings.
	Discovery DiscoveryConfig `mapstructure:"discovery" yaml:"discovery,omitempty" json:"discovery,omitempty"`
}

// Default values.
const (
	DefaultTemplatesDir = ".daggerx/templates"
	DefaultOwner        = "Excoriate"
)

// DefaultIgnore lists the directories skipped during module discovery.
func DefaultIgnore() []string {
	return []string{
		"**/.git",
		"**/node_modules",
		"**/.direnv",
		"**/.devenv",
		".daggerx",
	}
}

// DefaultConfig returns a Config with all default values populated.
// Used by `daggy config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		TemplatesDir: DefaultTemplatesDir,
		Owner:        DefaultOwner,
		Discovery: DiscoveryConfig{
			Ignore: DefaultIgnore(),
		},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.TemplatesDir == "" {
		out.TemplatesDir = def.TemplatesDir
	}
	if out.Owner == "" {
		out.Owner = def.Owner
	}
	if len(out.Discovery.Ignore) == 0 {
		out.Discovery.Ignore = def.Discovery.Ignore
	}
	return &out
}
