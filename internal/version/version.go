// Package version exposes the build metadata stamped into the binary with -ldflags "-X".
package version

import "fmt"

var (
	// Version is the semantic version of the release
	Version = "dev"

	// Commit is the git revision the binary was built from
	Commit = "none"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"
)

// String renders the single line printed by --version.
func String() string {
	return fmt.Sprintf("hibiki %s (commit %s, built %s)", Version, Commit, BuildTime)
}
