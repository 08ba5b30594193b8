package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	"github.com/daggerx/daggy/internal/config"
	oerrors "github.com/daggerx/daggy/internal/errors"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the daggy configuration file",
		Long: `Validate the daggy configuration file against the internal schema.

Unknown keys, wrong types and malformed discovery patterns are reported
one per line.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(cfg.Fs, path)
	if err != nil {
		notFound := oerrors.NewNotFoundError("config file not found", path,
			"Create one with 'daggy config init'.")
		return cmdutil.Fail("cannot validate config file", notFound)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateBytes(path, data); err != nil {
		var validation config.ValidationErrors
		if errors.As(err, &validation) {
			cmdutil.PrintError("config validation failed: "+path, err)
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", path)
	return nil
}
