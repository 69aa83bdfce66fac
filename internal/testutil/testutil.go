// Package testutil provides common test helpers for the spenv project.
package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// MissingConfigPath returns a path inside a temp dir where no config
// file exists, for exercising the defaults-only load path.
func MissingConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

// FailErr returns an error carrying a real subprocess exit status, for
// faking non-zero external resolver exits. It runs `false` once.
func FailErr(t *testing.T) error {
	t.Helper()

	err := exec.Command("false").Run()
	if err == nil {
		t.Fatal("FailErr: expected `false` to fail")
	}
	return err
}

// FailErrCode returns an error whose subprocess exit status is code.
func FailErrCode(t *testing.T, code int) error {
	t.Helper()

	err := exec.Command("sh", "-c", fmt.Sprintf("exit %d", code)).Run()
	if err == nil {
		t.Fatalf("FailErrCode: expected exit %d to fail", code)
	}
	return err
}
