// Package version holds build metadata for the stripprefix binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time:
// go build -ldflags "-X github.com/vexyart/stripprefix/internal/version.Version=v1.0.0".
var Version = "unknown"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns a one-line version description. When no ldflags were given
// it falls back to the module version recorded by go install.
func String() string {
	v := Version
	if v == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("stripprefix %s (commit %s, built %s)", v, GitCommit, BuildTime)
}
