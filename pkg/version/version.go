// Package version exposes build information injected with -ldflags.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build information. Set at link time, for example:
//
//	go build -ldflags "-X github.com/rshade/vlist/pkg/version.version=1.2.0"
var (
	version   = "0.1.0-dev" //nolint:gochecknoglobals // Set via -ldflags
	gitCommit = "unknown"   //nolint:gochecknoglobals // Set via -ldflags
	buildDate = "unknown"   //nolint:gochecknoglobals // Set via -ldflags
)

// GetVersion returns the version string.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Parse validates v as a semantic version. A leading "v" is accepted.
func Parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return sv, nil
}

// Current parses the version of the running binary.
func Current() (*semver.Version, error) {
	return Parse(version)
}

// IsPrerelease reports whether the running binary is a development or
// pre-release build.
func IsPrerelease() bool {
	sv, err := Current()
	if err != nil {
		return true
	}
	return sv.Prerelease() != ""
}
