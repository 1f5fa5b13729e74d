package version

import "fmt"

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X github.com/pablasso/progrow/internal/version.Version=v1.0.0"
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// CommitSHA is the git commit SHA at build time.
	CommitSHA = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Details returns the commit and build date in a single line.
func Details() string {
	return fmt.Sprintf("commit %s, built %s", CommitSHA, BuildDate)
}

// String returns the version followed by its details.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Details())
}
