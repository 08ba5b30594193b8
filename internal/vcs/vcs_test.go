package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/testutil"
)

func TestFindRoot(t *testing.T) {
	root := testutil.InitRepo(t)
	nested := filepath.Join(root, "my-module", "tests")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	for _, start := range []string{root, nested} {
		got, err := FindRoot(start)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	}
}

func TestFindRoot_NotARepository(t *testing.T) {
	dir := t.TempDir()

	_, err := FindRoot(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}
