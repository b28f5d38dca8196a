// Package version reports the catalogview build version.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// fallbackVersion is reported when the build version is missing or not semver.
const fallbackVersion = "0.0.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/catalogview/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "0.1.0"

// GetVersion returns the build version in canonical semver form, without a
// leading "v". Invalid build versions report fallbackVersion.
func GetVersion() string {
	return normalize(version)
}

// Parse returns the build version as a semver.Version.
func Parse() *semver.Version {
	return semver.MustParse(GetVersion())
}

func normalize(raw string) string {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fallbackVersion
	}
	return v.String()
}
