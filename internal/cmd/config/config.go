// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	oerrors "github.com/daggerx/daggy/internal/errors"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for daggy.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config file path, which is empty outside
// a repository when --config and DAGGY_CONFIG are unset.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg.ConfigPath != "" {
		return cfg.ConfigPath, nil
	}
	err := oerrors.NewNotFoundError(
		"no config file location",
		"",
		"Run inside the daggerverse repository or pass --config.",
	)
	return "", cmdutil.Fail("cannot locate config file", err)
}
