// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/mod, internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/afero"

	"github.com/daggerx/daggy/internal/config"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/toolchain"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config
	// ConfigPath is the resolved config file path (may not exist).
	ConfigPath string
	// RepoRoot is the enclosing git worktree root, empty outside a repository.
	RepoRoot string
	// TemplatesDir is the resolved, absolute templates directory.
	TemplatesDir string
	// Owner is the resolved module path owner.
	Owner   string
	Verbose bool

	// Fs is the filesystem every command works on.
	Fs afero.Fs
	// Runner executes external tools.
	Runner toolchain.Runner
}

// Exit codes aliasing the internal/errors constants.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitToolchainError  = oerrors.ExitToolchainError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
