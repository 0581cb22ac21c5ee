package version

import "fmt"

var (
	// Version is the release version, overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA of the build (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns only the version string.
func Short() string {
	return Version
}

// Full returns the version with commit and build time.
func Full() string {
	return fmt.Sprintf("msix-store-tool %s (commit %s, built %s)", Version, Commit, BuildTime)
}
