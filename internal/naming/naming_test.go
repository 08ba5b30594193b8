package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleConcatenated(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single segment", "module", "Module"},
		{"two segments", "my-module", "MyModule"},
		{"three segments", "foo-bar-baz", "FooBarBaz"},
		{"remainder kept", "foo-bAR", "FooBAR"},
		{"empty", "", ""},
		{"digits", "aws-s3-sync", "AwsS3Sync"},
		{"special casing", "ßtraße-x", "SStraßeX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleConcatenated(tt.in))
		})
	}
}

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single segment", "Module", "module"},
		{"two segments", "my-module", "myModule"},
		{"three segments", "foo-bar-baz", "fooBarBaz"},
		{"first segment lowercased", "Foo-bar", "fooBar"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LowerCamel(tt.in))
		})
	}
}

func TestLowercaseAndPackageForms(t *testing.T) {
	assert.Equal(t, "my-module", Lowercase("My-Module"))
	assert.Equal(t, "foo_bar", PackageSafe("Foo-Bar"))
	assert.Equal(t, "module_template_light", PackageSafe("module-template-light"))
	assert.Equal(t, "my-module", PackageName("  My Module "))
	assert.Equal(t, "module-template", PackageName("module-template"))
	assert.Empty(t, Lowercase(""))
	assert.Empty(t, PackageSafe(""))
	assert.Empty(t, PackageName(""))
}

func TestIdentifierForms(t *testing.T) {
	id := Identifier("payment-service")

	assert.Equal(t, "PaymentService", id.Title())
	assert.Equal(t, "paymentService", id.Camel())
	assert.Equal(t, "payment-service", id.Lower())
	assert.Equal(t, "payment_service", id.PackageSafe())
	assert.Equal(t, "payment-service", id.Pkg())
	assert.Equal(t, "payment-service", id.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"simple", "module", ""},
		{"hyphenated", "my-module", ""},
		{"digits", "aws-s3", ""},
		{"empty", "", "cannot be empty"},
		{"leading digit", "1module", "must start with a letter"},
		{"leading hyphen", "-module", "must start with a letter"},
		{"trailing hyphen", "module-", "must not end with a hyphen"},
		{"double hyphen", "my--module", "consecutive hyphens"},
		{"space", "my module", "invalid character"},
		{"underscore", "my_module", "invalid character"},
		{"path separator", "my/module", "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	id, err := Parse("my-module")
	require.NoError(t, err)
	assert.Equal(t, Identifier("my-module"), id)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Abc", Capitalize("abc"))
	assert.Equal(t, "ABC", Capitalize("ABC"))
	assert.Equal(t, "Éclair", Capitalize("éclair"))
	assert.Empty(t, Capitalize(""))
}
