// Package version holds the build information stamped in via ldflags.
package version

var (
	Version = "development"
	Commit  = "unknown"
)
