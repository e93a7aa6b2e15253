// Package version holds the build version, set with
// -ldflags "-X aoc2022/internal/version.Version=...".
package version

var Version = "dev"
