// Package runner spawns the external runner process and reports its exit code.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Spec describes a single child process invocation.
type Spec struct {
	Command string
	Args    []string
	Env     []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Spawn starts the child process described by spec, blocks until it exits,
// and returns its exit code. A child that ran and exited non-zero yields its
// code with a nil error; a child that could not be started at all yields a
// non-nil error. No distinction is made between a missing executable and any
// other start failure.
func Spawn(spec Spec) (int, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	cmd.Env = spec.Env
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("spawn %s: %w", spec.Command, err)
}
