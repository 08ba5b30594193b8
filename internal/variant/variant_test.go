package variant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/daggerx/daggy/internal/errors"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		selector string
		want     []string
	}{
		{"full", []string{"full"}},
		{"light", []string{"light"}},
		{"all", []string{"full", "light"}},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := Select(tt.selector)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, v := range got {
				names[i] = v.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSelect_Unknown(t *testing.T) {
	_, err := Select("lite")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Contains(t, detail.Hint, `Did you mean "light"?`)
	assert.Contains(t, detail.Hint, "full, light, all")

	_, err = Select("kubernetes")
	require.True(t, errors.As(err, &detail))
	assert.NotContains(t, detail.Hint, "Did you mean")
}

func TestGet(t *testing.T) {
	v, err := Get("light")
	require.NoError(t, err)
	assert.Equal(t, "mod-light", v.TemplateDir)
	assert.Equal(t, "module-template-light", v.Reference.String())

	_, err = Get("all")
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestVariantPaths(t *testing.T) {
	v := Default()
	assert.Equal(t, "full", v.Name)
	assert.Equal(t, "/repo/.daggerx/templates/mod-full", v.TemplateRoot("/repo/.daggerx/templates"))
	assert.Equal(t, "/repo/module-template", v.ReferenceRoot("/repo"))
	assert.Equal(t, "{{.module_name}}Light", mustGet(t, "light").Normalizer().Normalize("ModuleTemplateLightLight"))
}

func mustGet(t *testing.T, name string) Variant {
	t.Helper()
	v, err := Get(name)
	require.NoError(t, err)
	return v
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	assert.Equal(t, "full", Default().Name)
	assert.Equal(t, []string{"full", "light"}, Names())
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, "testdata", l.FixtureDir)
	assert.Equal(t, []Scope{
		{Instance: ".", Template: "module"},
		{Instance: "tests", Template: "tests"},
		{Instance: "examples/go", Template: "examples/go"},
	}, l.Scopes)
}
