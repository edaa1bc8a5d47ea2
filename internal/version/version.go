// Package version holds build-time version information, injected via
// ldflags by the release pipeline.
package version

var (
	// Version is the semantic version of this build
	Version = "dev"

	// Commit is the git commit this build was produced from
	Commit = "none"

	// Date is the build timestamp
	Date = "unknown"
)
