package mod

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	"github.com/daggerx/daggy/internal/config"
	"github.com/daggerx/daggy/internal/discovery"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/toolchain"
)

// developOptions holds the flags for the develop command.
type developOptions struct {
	root string
}

// NewDevelopCmd creates the mod develop command.
func NewDevelopCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &developOptions{}

	c := &cobra.Command{
		Use:   "develop",
		Short: "Run dagger develop in every module of the repository",
		Long: `Find every directory containing a dagger.json under the repository root
and run "dagger develop" in it. Directories matching discovery.ignore in
the config file are skipped.

Every module is attempted; the command fails if any of them failed.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runDevelop(c, cfg, opts)
		},
	}

	c.Flags().StringVar(&opts.root, "root", "", "Directory to search instead of the repository root")

	return c
}

func runDevelop(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *developOptions) error {
	root := opts.root
	if root == "" {
		if err := cmdutil.RequireRepo(cfg); err != nil {
			return cmdutil.Fail("cannot find modules", err)
		}
		root = cfg.RepoRoot
	}

	ignore := config.DefaultIgnore()
	if cfg.Config != nil && len(cfg.Config.Discovery.Ignore) > 0 {
		ignore = cfg.Config.Discovery.Ignore
	}

	modules, err := discovery.FindModules(cfg.Fs, root, ignore)
	if err != nil {
		return cmdutil.Fail("failed to find modules", err)
	}
	if len(modules) == 0 {
		err := oerrors.NewNotFoundError("no dagger modules found", root,
			"Modules are directories containing a dagger.json file.")
		return cmdutil.Fail("nothing to develop", err)
	}

	dagger := toolchain.NewDagger(cfg.Runner)
	statuses := make([]output.ModuleStatus, 0, len(modules))
	failed := 0

	for _, m := range modules {
		dir := filepath.Join(root, filepath.FromSlash(m))
		log := output.ModuleLogger(m)

		err := output.RunWithSpinner(c.Context(), func(ctx context.Context) error {
			return dagger.Develop(ctx, dir)
		}, output.WithTitle("dagger develop "+m))

		if err != nil {
			failed++
			log.Error("dagger develop failed", "error", err)
			statuses = append(statuses, output.ModuleStatus{Path: m, Status: output.StatusFailed, Message: firstLine(err)})
			continue
		}
		log.Debug("dagger develop succeeded")
		statuses = append(statuses, output.ModuleStatus{Path: m, Status: output.StatusDeveloped, Message: "ok"})
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.RenderModuleTable(statuses))
	fmt.Fprintf(out, "Developed %d of %d modules\n", len(modules)-failed, len(modules))

	if failed > 0 {
		return &oerrors.ExitError{
			Code: oerrors.ExitToolchainError,
			Err:  fmt.Errorf("dagger develop failed for %d of %d modules", failed, len(modules)),
		}
	}
	return nil
}

func firstLine(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
