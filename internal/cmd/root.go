// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	configcmd "github.com/daggerx/daggy/internal/cmd/config"
	"github.com/daggerx/daggy/internal/cmd/mod"
	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/config"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/toolchain"
	"github.com/daggerx/daggy/internal/vcs"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config       string
	templatesDir string
	verbose      bool
	timestamps   bool
}

// NewRootCmd creates the root command for the daggy CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{})
}

// newRootCmd wires the command tree around cfg. Fs and Runner already set on
// cfg are kept, which lets tests run commands against a memory filesystem.
func newRootCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "daggy",
		Short: "Dagger module scaffolding and template maintenance",
		Long: `daggy creates Dagger modules in a daggerverse repository from its template
trees, and keeps those templates in sync with the reference modules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: DAGGY_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.templatesDir, "templates-dir", "", "Templates directory (env: DAGGY_TEMPLATES_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(mod.NewModCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals locates the repository, loads configuration and sets up
// logging. A missing repository or unreadable config is not fatal here:
// commands that need them report the problem themselves.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	repoRoot, err := vcs.FindRoot(cwd)
	if err != nil {
		output.Debug("repository root not found", "error", err)
	}

	configPath := config.ResolveConfigPath(flags.config, repoRoot)
	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		output.Debug("config load error", "error", err)
		loaded = &config.Config{}
	}

	templatesDir := config.ResolveTemplatesDir(flags.templatesDir, loaded)
	owner := config.ResolveOwner("", loaded)

	base := repoRoot
	if base == "" {
		base = cwd
	}
	templatesPath, err := config.ResolvePath(base, templatesDir.Value)
	if err != nil {
		return fmt.Errorf("resolving templates directory: %w", err)
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true).
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(configPath, templatesDir, owner)

	cfg.Config = loaded.WithDefaults()
	cfg.ConfigPath = configPath.Value
	cfg.RepoRoot = repoRoot
	cfg.TemplatesDir = templatesPath
	cfg.Owner = owner.Value
	cfg.Verbose = flags.verbose

	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Runner == nil {
		runner := toolchain.ExecRunner{}
		if flags.verbose {
			runner.Stdout = c.ErrOrStderr()
			runner.Stderr = c.ErrOrStderr()
		}
		cfg.Runner = runner
	}

	output.Debug("initializing CLI",
		"repo", cfg.RepoRoot,
		"config", cfg.ConfigPath,
		"templatesDir", cfg.TemplatesDir,
		"owner", cfg.Owner,
	)

	return nil
}
