package runner

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestSpawnReturnsZeroOnSuccess(t *testing.T) {
	t.Parallel()

	code, err := Spawn(Spec{Command: "sh", Args: []string{"-c", "exit 0"}})
	if err != nil {
		t.Fatalf("Spawn returned error: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestSpawnPropagatesExitCode(t *testing.T) {
	t.Parallel()

	code, err := Spawn(Spec{Command: "sh", Args: []string{"-c", "exit 3"}})
	if err != nil {
		t.Fatalf("Spawn returned error: %v", err)
	}
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
}

func TestSpawnPassesEnvironment(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Command: "sh",
		Args:    []string{"-c", `test "$LAUNCH_PROBE" = ok`},
		Env:     []string{"LAUNCH_PROBE=ok", "PATH=/usr/bin:/bin"},
	}

	code, err := Spawn(spec)
	if err != nil {
		t.Fatalf("Spawn returned error: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected environment variable to reach the child, got exit code %d", code)
	}
}

func TestSpawnWiresStandardStreams(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	spec := Spec{
		Command: "sh",
		Args:    []string{"-c", "echo out; echo err >&2"},
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &stderr,
	}

	if _, err := Spawn(spec); err != nil {
		t.Fatalf("Spawn returned error: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "out" {
		t.Fatalf("unexpected stdout: %q", got)
	}
	if got := strings.TrimSpace(stderr.String()); got != "err" {
		t.Fatalf("unexpected stderr: %q", got)
	}
}

func TestSpawnReportsUnresolvableCommand(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no-such-runner")
	if _, err := Spawn(Spec{Command: missing}); err == nil {
		t.Fatalf("expected error for unresolvable command")
	}
}
