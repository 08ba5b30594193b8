package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
	"github.com/daggerx/daggy/internal/output"
	"github.com/daggerx/daggy/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show daggy version information.

Displays:
  - daggy version, commit, and build date
  - dagger CLI version and whether it is supported`,
		RunE: runVersion,
	}
}

func runVersion(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()
	fmt.Fprintln(out, version.GetInfo().String())

	dagger := version.DetectDaggerBinary(c.Context())
	fmt.Fprintln(out, "\ndagger:")
	if !dagger.Found {
		fmt.Fprintf(out, "  %s\n", output.FormatCross(dagger.Message))
		return nil
	}

	fmt.Fprintf(out, "  Version:  %s\n", dagger.Version)
	fmt.Fprintf(out, "  Path:     %s\n", dagger.Path)
	if dagger.Supported {
		fmt.Fprintf(out, "  %s\n", output.FormatCheckmark(dagger.Message))
	} else {
		fmt.Fprintf(out, "  %s\n", output.FormatCross(dagger.Message))
	}

	return nil
}
