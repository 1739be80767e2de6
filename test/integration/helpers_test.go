//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds ~/.docubook
	BinDir  string // the only entry on PATH; fake package managers live here
	WorkDir string // where projects are created
}

// setupTestEnv creates isolated temp directories and points HOME and PATH at
// them so no real package manager or user config is touched. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir)
	t.Setenv("npm_config_user_agent", "")

	return env
}

// fakeManager describes a shell script standing in for a package manager.
type fakeManager struct {
	Version     string
	InstallExit int
}

// installFakeManager writes an executable named name into the bin dir. It
// prints Version for --version and, on install, creates .installed in the
// working directory before exiting with InstallExit. Only shell builtins are
// used because PATH holds nothing else.
func installFakeManager(t *testing.T, env *testEnv, name string, m fakeManager) {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
case "$1" in
--version)
	echo "%s"
	;;
install)
	: > .installed
	exit %d
	;;
*)
	echo "unexpected arguments: $*" >&2
	exit 2
	;;
esac
`, m.Version, m.InstallExit)

	path := filepath.Join(env.BinDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake %s: %v", name, err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
