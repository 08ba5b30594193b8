package config

import (
	"os"

	"github.com/daggerx/daggy/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed holds lower-precedence values that were overridden.
	Shadowed map[ConfigSource]string
}

// resolve applies flag > env > config > default precedence.
func resolve(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: map[ConfigSource]string{}}
	envValue := os.Getenv(envVar)

	// The loader merges env into the config, so an equal config value is
	// the env value itself.
	if configValue == envValue {
		configValue = ""
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) DAGGY_CONFIG env, (3) <repoRoot>/.daggerx/daggy.yaml.
func ResolveConfigPath(flagValue, repoRoot string) ResolvedValue {
	def := ""
	if repoRoot != "" {
		def = DefaultConfigFile(repoRoot)
	}
	return resolve("config", flagValue, EnvConfig, "", def)
}

// ResolveTemplatesDir resolves the templates directory using precedence:
// (1) --templates-dir flag, (2) DAGGY_TEMPLATES_DIR env, (3) config
// templatesDir, (4) .daggerx/templates.
func ResolveTemplatesDir(flagValue string, cfg *Config) ResolvedValue {
	return resolve("templatesDir", flagValue, EnvTemplatesDir, configValue(cfg, func(c *Config) string { return c.TemplatesDir }), DefaultTemplatesDir)
}

// ResolveOwner resolves the module path owner using precedence:
// (1) --owner flag, (2) DAGGY_OWNER env, (3) config owner, (4) default.
func ResolveOwner(flagValue string, cfg *Config) ResolvedValue {
	return resolve("owner", flagValue, EnvOwner, configValue(cfg, func(c *Config) string { return c.Owner }), DefaultOwner)
}

func configValue(cfg *Config, get func(*Config) string) string {
	if cfg == nil {
		return ""
	}
	return get(cfg)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
