package application

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/agrobase/streamlit-launcher/internal/config"
	"github.com/agrobase/streamlit-launcher/internal/launchpad"
	"github.com/agrobase/streamlit-launcher/internal/runner"
)

// App encapsulates the launcher dependencies for a single invocation.
type App struct {
	cfg    config.Config
	paths  launchpad.Paths
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewAt wires the application against an explicit base directory. The main
// package resolves the directory from its own executable path; tests supply
// temporary directories.
func NewAt(cfg config.Config, logger *zap.Logger, base string) *App {
	return &App{
		cfg:    cfg,
		paths:  launchpad.ResolvePaths(base),
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Paths returns the resolved companion file locations.
func (a *App) Paths() launchpad.Paths {
	return a.paths
}

// Run executes the launch sequence and returns the exit code for the
// launcher process: validate the configuration file, validate the
// application entry file, prepare the child environment, spawn the runner,
// and propagate its exit code unchanged. The sequence is strictly linear
// with a single early exit at each validation step.
func (a *App) Run() int {
	if err := a.paths.Validate(); err != nil {
		a.logger.Error("launch aborted", zap.Error(err))
		return 1
	}

	if port, err := a.paths.Preflight(); err != nil {
		a.logger.Warn("configuration preflight failed", zap.Error(err))
	} else if port != 0 {
		a.logger.Info("configuration declares server port", zap.Int("port", port))
	}

	env := a.paths.BuildEnv(os.Environ(), a.cfg.ActivateEnv)
	a.logger.Info("launching application",
		zap.String(launchpad.ConfigEnvVar, a.paths.Config),
		zap.String("app", a.paths.App))

	args := []string{"run", a.paths.App}
	if a.cfg.DryRun {
		a.logger.Info("dry run, not spawning",
			zap.String("command", strings.Join(append([]string{a.cfg.Runner}, args...), " ")))
		return 0
	}

	code, err := runner.Spawn(runner.Spec{
		Command: a.cfg.Runner,
		Args:    args,
		Env:     env,
		Stdin:   a.stdin,
		Stdout:  a.stdout,
		Stderr:  a.stderr,
	})
	if err != nil {
		a.logger.Error("failed to start runner", zap.Error(err))
		return 1
	}
	return code
}
