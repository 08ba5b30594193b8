package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daggerx/daggy/internal/testutil"
)

func TestExcludes(t *testing.T) {
	assert.Equal(t, []string{
		".direnv", ".devenv", ".vscode", ".idea", ".trunk", "go.work", "go.work.sum",
	}, Excludes(0))

	tests := Excludes(2)
	assert.Len(t, tests, 7)
	assert.Equal(t, "../../.direnv", tests[0])
	assert.Equal(t, "../../go.work.sum", tests[6])

	assert.Equal(t, "../../../.trunk", Excludes(3)[4])
}

func TestUpdateExcludes(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteTree(t, fsys, "/repo/my-module", map[string]string{
		FileName: `{"name": "my-module", "sdk": "go", "source": ".", "exclude": ["old"]}`,
	})
	path := "/repo/my-module/" + FileName

	require.NoError(t, UpdateExcludes(fsys, path, Excludes(1)))

	excluded, err := Excluded(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, Excludes(1), excluded)

	content := testutil.ReadFile(t, fsys, path)
	assert.Contains(t, content, `"name": "my-module"`)
	assert.Contains(t, content, `"sdk": "go"`)
	assert.Contains(t, content, `"../.direnv"`)
	assert.NotContains(t, content, `"old"`)
}

func TestUpdateExcludes_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	assert.Error(t, UpdateExcludes(fsys, "/missing/dagger.json", Excludes(1)))

	testutil.WriteTree(t, fsys, "/bad", map[string]string{FileName: "{not json"})
	assert.Error(t, UpdateExcludes(fsys, "/bad/"+FileName, Excludes(1)))
}

func TestDiff(t *testing.T) {
	before := []byte(`{"name": "my-module", "exclude": ["../.direnv"]}`)
	after := []byte(`{"name": "my-module", "exclude": ["../.direnv", "../.idea"]}`)

	report, err := Diff(before, after)
	require.NoError(t, err)
	assert.Contains(t, report, "exclude")
	assert.Contains(t, report, "../.idea")

	same, err := Diff(before, before)
	require.NoError(t, err)
	assert.Empty(t, same)

	empty, err := Diff(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
