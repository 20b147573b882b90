// Package version holds the build version, overridable with
// -ldflags "-X misclass/internal/version.Version=...".
package version

// Version is the misclass release.
var Version = "0.3.0"
