// Package version carries build metadata injected by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the full version line printed by -version.
func String() string {
	return fmt.Sprintf("browsergrid %s (%s, built %s)", Version, CommitHash, BuildDate)
}
