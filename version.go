package pagebreaks

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMDBookVersion is the mdBook release this preprocessor targets.
const SupportedMDBookVersion = "0.4.21"

// CheckVersion reports whether the host mdBook version is compatible with
// SupportedMDBookVersion under caret rules: at least the supported version,
// same major version, and same minor version while the major is 0.
//
// Returns ErrInvalidVersion if hostVersion is not a full semver version, or
// ErrVersionMismatch if it is outside the compatible range.
func CheckVersion(hostVersion string) error {
	return checkVersion(SupportedMDBookVersion, hostVersion)
}

func checkVersion(required, host string) error {
	req, ok := parseVersion(required)
	if !ok {
		return fmt.Errorf("%w: requirement %q", ErrInvalidVersion, required)
	}
	got, ok := parseVersion(host)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, host)
	}

	if semver.Compare(got, req) < 0 || !sameCaretRange(req, got) {
		return fmt.Errorf("%w: built for %s, called from %s", ErrVersionMismatch, required, host)
	}
	return nil
}

// sameCaretRange compares the left-most non-zero component of the requirement
// against the host version.
func sameCaretRange(req, got string) bool {
	if semver.Major(req) != "v0" {
		return semver.Major(req) == semver.Major(got)
	}
	if semver.MajorMinor(req) != "v0.0" {
		return semver.MajorMinor(req) == semver.MajorMinor(got)
	}
	return semver.Canonical(req) == semver.Canonical(got)
}

// parseVersion accepts a full MAJOR.MINOR.PATCH version with optional
// pre-release and build parts, and returns it with the "v" prefix
// golang.org/x/mod/semver requires. Prefixed and shortened forms are rejected.
func parseVersion(v string) (string, bool) {
	if v == "" || strings.HasPrefix(v, "v") {
		return "", false
	}
	sv := "v" + v
	if !semver.IsValid(sv) {
		return "", false
	}
	core, _, _ := strings.Cut(sv, "+")
	if semver.Canonical(sv) != core {
		return "", false
	}
	return sv, true
}
