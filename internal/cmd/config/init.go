package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	"github.com/daggerx/daggy/internal/config"
	oerrors "github.com/daggerx/daggy/internal/errors"
)

const configHeader = "# daggy configuration\n# Keys: templatesDir, owner, log.timestamps, discovery.ignore\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new daggy configuration file",
		Long: `Create a new daggy configuration file with default values.

The configuration file is created at <repo>/.daggerx/daggy.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(cfg.Fs, path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		err := oerrors.NewValidationError("config file already exists", path, "",
			"Use --force to overwrite it.")
		return cmdutil.Fail("cannot create config file", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := cfg.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := afero.WriteFile(cfg.Fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}
