// Package toolchain runs the external tools daggy drives: the dagger CLI
// and the go toolchain. Every invocation names its working directory
// explicitly; the process working directory is never changed.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/daggerx/daggy/internal/errors"
	"github.com/daggerx/daggy/internal/output"
)

// Runner executes a command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Stdout and Stderr receive the command's streams. Nil discards them.
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner. Failures wrap errors.ErrToolchain and include the
// tail of stderr.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = r.Stdout
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	output.Debug("running command", "cmd", commandLine, "dir", dir)

	if err := cmd.Run(); err != nil {
		details := map[string]string{
			oerrors.ContextCommand: commandLine,
			oerrors.ContextDir:     dir,
		}
		if tail := lastLines(stderr.String(), 10); tail != "" {
			details[oerrors.ContextStderr] = tail
		}
		return oerrors.NewToolchainError(err.Error(), details, hintFor(name, err))
	}

	return nil
}

func hintFor(name string, err error) string {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return "Install " + name + " and make sure it is on PATH."
	}
	return ""
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
