package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/daggerx/daggy/internal/errors"
)

func TestVariantFlags_AddTo(t *testing.T) {
	var single VariantFlags
	create := &cobra.Command{Use: "create"}
	single.AddTo(create, false)

	typeFlag := create.Flags().Lookup("type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "t", typeFlag.Shorthand)
	assert.Equal(t, "full", typeFlag.DefValue)

	var multi VariantFlags
	sync := &cobra.Command{Use: "sync"}
	multi.AddTo(sync, true)
	assert.Equal(t, "all", sync.Flags().Lookup("type").DefValue)
}

func TestVariantFlags_Resolve(t *testing.T) {
	f := VariantFlags{Type: "all"}
	variants, err := f.Variants()
	require.NoError(t, err)
	assert.Len(t, variants, 2)

	_, err = f.Variant()
	assert.ErrorIs(t, err, oerrors.ErrValidation, "create needs a single type")

	f.Type = "light"
	v, err := f.Variant()
	require.NoError(t, err)
	assert.Equal(t, "mod-light", v.TemplateDir)
}

func TestDetectFlags_AddTo(t *testing.T) {
	var df DetectFlags
	cmd := &cobra.Command{Use: "test"}
	df.AddTo(cmd)

	detailed := cmd.Flags().Lookup("detailed")
	require.NotNil(t, detailed)
	assert.Equal(t, "false", detailed.DefValue)
	assert.Equal(t, "bool", detailed.Value.Type())
}
