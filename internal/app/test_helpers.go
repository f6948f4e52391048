package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/specialistvlad/forgecfg/internal/registry"
	"github.com/specialistvlad/forgecfg/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. It returns the
// app, the buffer receiving its output, and the buffer receiving its logs.
func SetupAppTest(t *testing.T, cfg *Config, modules ...registry.Module) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(out, logBuffer, cfg, modules...)

	t.Cleanup(func() {
		if os.Getenv("FORGECFG_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
