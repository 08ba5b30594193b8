package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/naming"
)

const (
	readmeFile  = "README.md"
	licenseFile = "LICENSE"

	// readmePlaceholder is replaced with the module name in the README.
	readmePlaceholder = "[@MODULE_NAME]"
)

// copyDocs copies the README, with its name placeholder replaced, and the
// LICENSE from templatesDir into moduleDir.
func (s *Scaffolder) copyDocs(id naming.Identifier, templatesDir, moduleDir string) ([]string, error) {
	readme, err := afero.ReadFile(s.fs, filepath.Join(templatesDir, readmeFile))
	if err != nil {
		return nil, fmt.Errorf("reading README template: %w", err)
	}
	content := strings.ReplaceAll(string(readme), readmePlaceholder, id.String())
	if err := afero.WriteFile(s.fs, filepath.Join(moduleDir, readmeFile), []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing README: %w", err)
	}

	license, err := afero.ReadFile(s.fs, filepath.Join(templatesDir, licenseFile))
	if err != nil {
		return nil, fmt.Errorf("reading LICENSE: %w", err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(moduleDir, licenseFile), license, 0o644); err != nil {
		return nil, fmt.Errorf("writing LICENSE: %w", err)
	}

	return []string{readmeFile, licenseFile}, nil
}
