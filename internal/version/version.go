package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/discomon/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/discomon/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/discomon/internal/version.Date={{.Date}}
)

// Info returns the one-line version string shown by the version command
func Info() string {
	return "discomon " + Version + " (commit " + Commit + ", built " + Date + ")"
}
