package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daggerx/daggy/internal/config"
	oerrors "github.com/daggerx/daggy/internal/errors"
)

func TestFail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", oerrors.NewValidationError("bad name", "", "name", ""), oerrors.ExitValidationError},
		{"not found", oerrors.NewNotFoundError("missing", "/repo", ""), oerrors.ExitNotFound},
		{"toolchain", fmt.Errorf("init: %w", oerrors.NewToolchainError("exit status 1", nil, "")), oerrors.ExitToolchainError},
		{"config", config.ValidationErrors{{Field: "owner", Message: "invalid"}}, oerrors.ExitGeneralError},
		{"io", errors.New("disk full"), oerrors.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Fail("operation failed", tt.err)

			var exitErr *oerrors.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.code, exitErr.Code)
			assert.True(t, exitErr.Printed)
			assert.Equal(t, tt.err, exitErr.Err)
		})
	}
}
