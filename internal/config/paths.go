package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the repository-level directory for daggy files.
	ConfigDirName = ".daggerx"

	// ConfigFileName is the config file name inside ConfigDirName.
	ConfigFileName = "daggy.yaml"
)

// DefaultConfigFile returns <repoRoot>/.daggerx/daggy.yaml.
func DefaultConfigFile(repoRoot string) string {
	return filepath.Join(repoRoot, ConfigDirName, ConfigFileName)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported.
	return path, nil
}

// ResolvePath expands path and anchors it at base when relative.
func ResolvePath(base, path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(base, expanded), nil
}
