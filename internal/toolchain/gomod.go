package toolchain

import (
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// SetModulePath rewrites the module directive of the go.mod at path.
func SetModulePath(fsys afero.Fs, path, modulePath string) error {
	if err := module.CheckPath(modulePath); err != nil {
		return fmt.Errorf("invalid module path %q: %w", modulePath, err)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := f.AddModuleStmt(modulePath); err != nil {
		return fmt.Errorf("setting module path: %w", err)
	}

	out, err := f.Format()
	if err != nil {
		return fmt.Errorf("formatting %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ModulePath returns the module directive of the go.mod at path.
func ModulePath(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "", fmt.Errorf("%s has no module directive", path)
	}
	return modPath, nil
}
