// Package version holds build metadata set by the linker.
//
//	go build -ldflags "-X github.com/dkoosis/gloss/internal/version.Version=v1.2.0"
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the version line printed by `gloss version`.
func String() string {
	return fmt.Sprintf("gloss %s\ncommit: %s\nbuilt: %s", Version, CommitHash, BuildDate)
}
