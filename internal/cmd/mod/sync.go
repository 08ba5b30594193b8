package mod

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	"github.com/daggerx/daggy/internal/inspect"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/updater"
	"github.com/daggerx/daggy/internal/variant"
)

// syncOptions holds the flags for the sync command.
type syncOptions struct {
	variant cmdutil.VariantFlags
	detect  cmdutil.DetectFlags
	dryRun  bool
	yes     bool
}

// NewSyncCmd creates the mod sync command.
func NewSyncCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &syncOptions{}

	c := &cobra.Command{
		Use:   "sync",
		Short: "Write reference module changes back into the templates",
		Long: `Detect how each reference module differs from its template tree, then
rewrite the templates so they produce the reference module again.

Concrete module names in changed files are replaced by template tokens.
Test fixtures are copied verbatim. The command asks for confirmation once
per module type unless --yes is given; --dry-run only reports.

Examples:
  # Preview changes for both module types
  daggy mod sync --dry-run

  # Sync the full module templates without prompting
  daggy mod sync --type full --yes`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runSync(c, cfg, opts)
		},
	}

	opts.variant.AddTo(c, true)
	opts.detect.AddTo(c)
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report changes without writing templates")
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return c
}

func runSync(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *syncOptions) error {
	variants, err := opts.variant.Variants()
	if err != nil {
		return cmdutil.Fail("invalid module type", err)
	}

	out := c.OutOrStdout()
	// One scanner for every prompt; a scanner per prompt would drop buffered answers.
	answers := bufio.NewScanner(c.InOrStdin())

	for _, v := range variants {
		log := output.ModuleLogger(v.Reference.String())

		result, err := cmdutil.DetectVariant(cfg, v, opts.detect.Detailed)
		if err != nil {
			return cmdutil.Fail(fmt.Sprintf("failed to inspect the %s module", v.Name), err)
		}

		if len(result.Changes) == 0 {
			fmt.Fprintf(out, "No changes detected for the %s module.\n", v.Name)
			continue
		}

		fmt.Fprint(out, output.RenderChanges(v.Name, cmdutil.ChangeItems(result.Changes)))

		if opts.dryRun {
			fmt.Fprintf(out, "Dry run: changes would be synced for the %s module.\n", v.Name)
			continue
		}

		if !opts.yes && !confirmSync(out, answers) {
			fmt.Fprintf(out, "Sync cancelled for the %s module.\n", v.Name)
			continue
		}

		u := &updater.Updater{
			Fs:           cfg.Fs,
			InstanceRoot: result.InstanceRoot,
			TemplateRoot: result.TemplateRoot,
			Normalizer:   v.Normalizer(),
			Layout:       variant.DefaultLayout(),
		}
		applied, err := u.Apply(result.Changes)
		if err != nil {
			return cmdutil.Fail(fmt.Sprintf("failed to sync the %s module", v.Name), err)
		}

		for _, r := range result.Changes {
			fmt.Fprintln(out, "  "+output.FormatFileLine(r.TemplatePath, r.Status.String()))
		}
		counts := inspect.Count(result.Changes)
		log.Info("templates updated",
			"added", counts[inspect.Added],
			"modified", counts[inspect.Modified],
			"deleted", len(applied.Deleted),
			"fixtures", len(applied.Fixtures),
		)
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Changes synced for the %s module", v.Name)))
	}

	return nil
}

// confirmSync prompts on out and reads one answer. Anything but y or yes,
// including end of input, declines.
func confirmSync(out io.Writer, answers *bufio.Scanner) bool {
	fmt.Fprint(out, "Do you want to proceed with the sync? (y/N): ")
	if !answers.Scan() {
		fmt.Fprintln(out)
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(answers.Text()))
	return answer == "y" || answer == "yes"
}
