package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// configEnv lists the variables the config layer reads
var configEnv = []string{
	"DISCO_EVENTS",
	"DISCO_MASTER",
	"DISCOMON_EVENTS_FORMAT",
	"DISCOMON_POLL_INTERVAL",
	"DISCOMON_MASTER_URL",
	"DISCOMON_MASTER_TIMEOUT",
	"DISCOMON_WATCH_STOP_ON_FINISH",
}

// Isolate points the XDG config and state directories at a fresh temp dir
// and unsets the discomon environment. It returns the temp dir; user config
// files go under <dir>/config/discomon/. Everything is restored on cleanup.
func Isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "config-dirs"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	for _, name := range configEnv {
		// Setenv first so the original value is restored on cleanup
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}
	return dir
}
