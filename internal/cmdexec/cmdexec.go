// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// Interactive executes an external command wired to the current process's
	// stdin/stdout/stderr and returns its exit code.
	Interactive(ctx context.Context, name string, args ...string) (int, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Interactive executes the command attached to the caller's terminal.
// The returned int is the command's exit code; a non-zero exit is not
// reported as an error so callers can propagate the code verbatim.
func (c *RealCommander) Interactive(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("cmdexec.Interactive: %w", err)
}

// ExitCode extracts the exit code from an error returned by Run.
// Returns 1 when the error carries no exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
