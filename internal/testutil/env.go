package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/xpty"
)

// WithEnv sets env var to val for the duration of the test scope.
// An empty val unsets it. Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// DataDir creates an empty control directory under the test's temp dir.
func DataDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}
	return dir
}

// Pause creates pause.flag in dir, the way the GUI does, and returns a func
// that removes it again.
func Pause(t *testing.T, dir string) func() {
	t.Helper()
	flag := filepath.Join(dir, "pause.flag")
	if err := os.WriteFile(flag, nil, 0o644); err != nil {
		t.Fatalf("create pause flag: %v", err)
	}
	return func() {
		if err := os.Remove(flag); err != nil && !os.IsNotExist(err) {
			t.Errorf("remove pause flag: %v", err)
		}
	}
}

// Terminal opens a pseudo-terminal and returns its slave side, which
// isatty reports as a terminal. The test is skipped where ptys are
// unavailable.
func Terminal(t *testing.T) *os.File {
	t.Helper()
	p, err := xpty.NewUnixPty(80, 24)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p.Slave()
}
