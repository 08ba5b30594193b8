package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment variable prefix for daggy configuration.
const envPrefix = "DAGGY"

// Environment variables read by daggy.
const (
	EnvConfig       = "DAGGY_CONFIG"
	EnvTemplatesDir = "DAGGY_TEMPLATES_DIR"
	EnvOwner        = "DAGGY_OWNER"
)

// Loader reads the config file and merges environment overrides.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("templatesDir", EnvTemplatesDir)
	_ = v.BindEnv("owner", EnvOwner)
	_ = v.BindEnv("log.timestamps", "DAGGY_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load reads configFile. A missing file is not an error: the result then
// carries only environment values. Environment values take precedence over
// file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		expandedPath, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists on fsys.
func ConfigFileExists(fsys afero.Fs, configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	if _, err := fsys.Stat(expandedPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
