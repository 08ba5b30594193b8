package mod

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/scaffold"
	"github.com/daggerx/daggy/internal/version"
)

// createOptions holds the flags for the create command.
type createOptions struct {
	variant    cmdutil.VariantFlags
	skipDagger bool
	owner      string
}

// NewCreateCmd creates the mod create command.
func NewCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &createOptions{}

	c := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new Dagger module",
		Long: `Create a new Dagger module at the repository root from the template tree
of the selected module type.

The module, its tests module and its Go examples module are initialized
with dagger, rendered from the templates and wired together. A CI
workflow is generated under .github/workflows.

Examples:
  # Create a full module
  daggy mod create payment-service

  # Create a light module without calling dagger
  daggy mod create payment-service --type light --skip-dagger`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, cfg, args[0], opts)
		},
	}

	opts.variant.AddTo(c, false)
	c.Flags().BoolVar(&opts.skipDagger, "skip-dagger", false, "Skip every dagger invocation")
	c.Flags().StringVar(&opts.owner, "owner", "", "GitHub owner in the generated module paths (env: DAGGY_OWNER)")

	return c
}

func runCreate(c *cobra.Command, cfg *cmdtypes.GlobalConfig, name string, opts *createOptions) error {
	v, err := opts.variant.Variant()
	if err != nil {
		return cmdutil.Fail("invalid module type", err)
	}
	if err := cmdutil.RequireRepo(cfg); err != nil {
		return cmdutil.Fail("cannot create module", err)
	}

	owner := opts.owner
	if owner == "" {
		owner = cfg.Owner
	}

	if !opts.skipDagger {
		if dagger := version.DetectDaggerBinary(c.Context()); dagger.Found && !dagger.Supported {
			output.Warn("dagger version may be unsupported", "version", dagger.Version, "detail", dagger.Message)
		}
	}

	result, err := scaffold.New(cfg.Fs, cfg.Runner).Create(c.Context(), scaffold.Options{
		Name:         name,
		Variant:      v,
		RepoRoot:     cfg.RepoRoot,
		TemplatesDir: cfg.TemplatesDir,
		Owner:        owner,
		SkipDagger:   opts.skipDagger,
	})
	if err != nil {
		return cmdutil.Fail(fmt.Sprintf("failed to create module %q", name), err)
	}

	out := c.OutOrStdout()
	fmt.Fprint(out, output.RenderFileTree(filepath.Base(result.ModuleDir), result.Files))
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Module %s created (%s)", name, v.Name)))
	if rel, err := filepath.Rel(cfg.RepoRoot, result.Workflow); err == nil {
		fmt.Fprintf(out, "  Workflow: %s\n", filepath.ToSlash(rel))
	}

	return nil
}
