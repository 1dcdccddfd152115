package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agrobase/streamlit-launcher/internal/launchpad"
)

func TestRunLaunchesFromPreparedBase(t *testing.T) {
	base := prepareBase(t)
	stub := writeStubRunner(t, base, "exit 0")

	if code := run([]string{"--runner", stub}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunPropagatesChildExitCode(t *testing.T) {
	base := prepareBase(t)
	stub := writeStubRunner(t, base, "exit 4")

	if code := run([]string{"--runner", stub}); code != 4 {
		t.Fatalf("expected exit code 4, got %d", code)
	}
}

func TestRunFailsFastWithoutCompanionFiles(t *testing.T) {
	base := t.TempDir()
	overrideResolveBase(t, base)

	if code := run(nil); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunDryRun(t *testing.T) {
	prepareBase(t)

	if code := run([]string{"--dry-run"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

// prepareBase points base resolution at a temp directory holding both
// companion files.
func prepareBase(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, ".streamlit", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("[server]\nheadless = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "streamlit_app.py"), nil, 0o644); err != nil {
		t.Fatalf("write app: %v", err)
	}

	overrideResolveBase(t, base)
	return base
}

func overrideResolveBase(t *testing.T, base string) {
	t.Helper()

	t.Cleanup(func() {
		resolveBase = launchpad.ResolveBase
	})
	resolveBase = func() (string, error) {
		return base, nil
	}
}

func writeStubRunner(t *testing.T, base, body string) string {
	t.Helper()

	path := filepath.Join(base, "stub-runner")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write stub runner: %v", err)
	}
	return path
}
