package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version (injected at build time via ldflags)
	Version = "dev"

	// GitCommit is the git commit hash (injected at build time via ldflags)
	GitCommit = "unknown"

	// GoVersion is the Go compiler version
	GoVersion = runtime.Version()
)

// Short returns the version, with the abbreviated commit when known.
func Short() string {
	if GitCommit != "unknown" && len(GitCommit) > 7 {
		return fmt.Sprintf("%s-%s", Version, GitCommit[:7])
	}
	return Version
}

// Full returns a detailed version string with build info.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s %s/%s)",
		Version, GitCommit, GoVersion, runtime.GOOS, runtime.GOARCH)
}
