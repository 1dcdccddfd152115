// Package launchpad resolves and validates the companion files the launcher
// expects to find beside its own binary, and prepares the environment handed
// to the spawned runner.
package launchpad

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = ".streamlit"
	configFileName = "config.toml"
	appFileName    = "streamlit_app.py"

	// ConfigEnvVar is the variable the runner reads to locate its configuration.
	ConfigEnvVar = "STREAMLIT_CONFIG"
)

// Paths holds the resolved companion file locations for a single launch.
type Paths struct {
	Base   string
	Config string
	App    string
}

// ResolveBase returns the absolute directory containing the currently
// executing binary, independent of the caller's working directory.
func ResolveBase() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}

	return filepath.Dir(resolved), nil
}

// ResolvePaths joins the fixed companion file names onto the base directory.
func ResolvePaths(base string) Paths {
	return Paths{
		Base:   base,
		Config: filepath.Join(base, configDirName, configFileName),
		App:    filepath.Join(base, appFileName),
	}
}

// Validate confirms both companion files exist. The configuration file is
// checked first; the first missing file aborts the check, so a base directory
// missing both reports only the configuration file.
func (p Paths) Validate() error {
	if _, err := os.Stat(p.Config); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingConfigFile, p.Config)
	}
	if _, err := os.Stat(p.App); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingAppFile, p.App)
	}
	return nil
}

// BuildEnv returns the environment for the child process: a copy of parent
// extended with ConfigEnvVar pointing at the configuration file. Any
// pre-existing ConfigEnvVar entry is replaced. When activateEnv names a
// virtual environment root, its bin directory is prepended to PATH so the
// runner resolves from there first. The launcher's own process environment is
// never mutated.
func (p Paths) BuildEnv(parent []string, activateEnv string) []string {
	env := make([]string, 0, len(parent)+1)
	for _, kv := range parent {
		if strings.HasPrefix(kv, ConfigEnvVar+"=") {
			continue
		}
		if activateEnv != "" && strings.HasPrefix(kv, "PATH=") {
			binDir := filepath.Join(activateEnv, "bin")
			kv = "PATH=" + binDir + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
		}
		env = append(env, kv)
	}
	return append(env, ConfigEnvVar+"="+p.Config)
}
