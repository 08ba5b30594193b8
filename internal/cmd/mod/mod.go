// Package mod provides the `daggy mod` command group.
package mod

import (
	"github.com/spf13/cobra"

	"github.com/daggerx/daggy/internal/cmdtypes"
)

// NewModCmd creates the mod command group.
func NewModCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "mod",
		Short: "Module operations",
		Long:  `Commands for creating Dagger modules and maintaining their templates.`,
	}

	c.AddCommand(
		NewCreateCmd(cfg),
		NewInspectCmd(cfg),
		NewSyncCmd(cfg),
		NewDevelopCmd(cfg),
	)

	return c
}
