package version

import (
	"github.com/Masterminds/semver/v3"
)

// Parsed returns Version as a semantic version, or nil for builds without
// a release tag (such as "dev").
func Parsed() *semver.Version {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil
	}
	return v
}

// IsDevBuild reports whether Version is not a semantic version.
func IsDevBuild() bool {
	return Parsed() == nil
}

// IsPrerelease reports whether Version carries a pre-release suffix.
func IsPrerelease() bool {
	v := Parsed()
	return v != nil && v.Prerelease() != ""
}

// Channel names the release channel: "development", "pre-release" or
// empty for a stable release.
func Channel() string {
	v := Parsed()
	switch {
	case v == nil:
		return "development"
	case v.Prerelease() != "":
		return "pre-release"
	default:
		return ""
	}
}
