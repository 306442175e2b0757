package version

import (
	"strings"
	"testing"
)

func TestBuildInfoInitialized(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if BuildTime == "" || GitCommit == "" {
		t.Error("build metadata should be initialized")
	}
}

func TestString(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v9.9.9"
	got := String()
	if !strings.HasPrefix(got, "stripprefix v9.9.9 ") {
		t.Errorf("String() = %q, want prefix %q", got, "stripprefix v9.9.9 ")
	}
}
