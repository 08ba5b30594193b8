package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// daggerVersionRegex matches output like
// "dagger v0.13.3 (registry.dagger.io/engine:v0.13.3) linux/amd64".
var daggerVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// DetectDaggerBinary finds the dagger binary and checks its version.
func DetectDaggerBinary(ctx context.Context) DaggerBinaryInfo {
	path, err := lookPath("dagger")
	if err != nil {
		return DaggerBinaryInfo{
			Message: "dagger binary not found in PATH",
		}
	}

	version, err := daggerVersion(ctx, path)
	if err != nil {
		return DaggerBinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get dagger version: " + err.Error(),
		}
	}

	return DaggerBinaryInfo{
		Version:   version,
		Path:      path,
		Found:     true,
		Supported: DaggerVersionSupported(MinDaggerVersion, version),
		Message:   SupportMessage(MinDaggerVersion, version),
	}
}

func daggerVersion(ctx context.Context, daggerPath string) (string, error) {
	cmd := exec.CommandContext(ctx, daggerPath, "version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion pulls the first version number out of "dagger version" output.
func extractVersion(output string) (string, error) {
	match := daggerVersionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("failed to parse dagger version from output: %q", strings.TrimSpace(output))
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match, nil
}
