package cmdutil

import (
	"errors"

	"github.com/daggerx/daggy/internal/config"
	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/output"
)

// PrintError logs err in a user-friendly format. Structured errors are
// printed as-is; config validation errors list one line per field.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	var validation config.ValidationErrors

	switch {
	case errors.As(err, &detail):
		output.Error(msg)
		output.Details(detail.Error())
	case errors.As(err, &validation):
		output.Error(msg)
		for _, e := range validation {
			output.Details("  " + e.Error())
		}
	default:
		output.Error(msg, "error", err)
	}
}

// Fail prints err and returns it as an *ExitError whose code follows the
// error taxonomy.
func Fail(msg string, err error) error {
	PrintError(msg, err)
	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}
