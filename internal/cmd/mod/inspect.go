package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/cmdutil"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/output"
)

// inspectOptions holds the flags for the inspect command.
type inspectOptions struct {
	variant cmdutil.VariantFlags
	detect  cmdutil.DetectFlags
	output  string
}

// NewInspectCmd creates the mod inspect command.
func NewInspectCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &inspectOptions{}

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Show how reference modules differ from their templates",
		Long: `Compare each reference module with its template tree and list the files
that were added, modified or deleted. Nothing is written.

Examples:
  # Summary for both module types
  daggy mod inspect

  # Line diffs for the light module, as YAML
  daggy mod inspect --type light --detailed -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInspect(c, cfg, opts)
		},
	}

	opts.variant.AddTo(c, true)
	opts.detect.AddTo(c)
	c.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, yaml, json")

	return c
}

func runInspect(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *inspectOptions) error {
	format := output.ParseOutputFormat(opts.output)
	if !format.IsValid() {
		err := oerrors.NewValidationError(
			fmt.Sprintf("invalid output format %q", opts.output), "", "output",
			fmt.Sprintf("Valid formats: %v", output.ValidFormats()))
		return cmdutil.Fail("invalid output format", err)
	}

	variants, err := opts.variant.Variants()
	if err != nil {
		return cmdutil.Fail("invalid module type", err)
	}

	var results []*cmdutil.VariantChanges
	for _, v := range variants {
		result, err := cmdutil.DetectVariant(cfg, v, opts.detect.Detailed)
		if err != nil {
			return cmdutil.Fail(fmt.Sprintf("failed to inspect the %s module", v.Name), err)
		}
		results = append(results, result)
	}

	out := c.OutOrStdout()
	if format != output.FormatText {
		if err := output.Encode(out, format, results); err != nil {
			return cmdutil.Fail("failed to encode results", err)
		}
		return nil
	}

	for _, r := range results {
		fmt.Fprint(out, output.RenderChanges(r.Type, cmdutil.ChangeItems(r.Changes)))
	}
	return nil
}
