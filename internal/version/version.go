// Package version provides version information for daggy.
package version

import (
	"fmt"
	"runtime"

	"golang.org/x/mod/semver"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version.
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// MinDaggerVersion is the oldest dagger CLI that supports the
// "dagger init --sdk go --source ." layout generated modules rely on.
const MinDaggerVersion = "v0.12.0"

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// DaggerBinaryInfo describes the dagger binary found on PATH.
type DaggerBinaryInfo struct {
	// Version is the dagger CLI version, "v"-prefixed.
	Version string `json:"version"`

	// Path is the path to the dagger binary.
	Path string `json:"path"`

	// Found indicates if the binary was found.
	Found bool `json:"found"`

	// Supported indicates Version >= MinDaggerVersion.
	Supported bool `json:"supported"`

	// Message provides additional detail.
	Message string `json:"message,omitempty"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("daggy:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}

// DaggerVersionSupported reports whether found is at least minimum.
// Invalid versions are never supported.
func DaggerVersionSupported(minimum, found string) bool {
	if !semver.IsValid(found) || !semver.IsValid(minimum) {
		return false
	}
	return semver.Compare(found, minimum) >= 0
}

// SupportMessage explains the result of DaggerVersionSupported.
func SupportMessage(minimum, found string) string {
	if DaggerVersionSupported(minimum, found) {
		return "supported"
	}
	return fmt.Sprintf("dagger %s is older than the required %s", found, minimum)
}
