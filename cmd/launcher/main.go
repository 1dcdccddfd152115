package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/agrobase/streamlit-launcher/internal/application"
	"github.com/agrobase/streamlit-launcher/internal/config"
	"github.com/agrobase/streamlit-launcher/internal/launchpad"
	"github.com/agrobase/streamlit-launcher/internal/logging"
)

var resolveBase = launchpad.ResolveBase

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	kingpinApp := kingpin.New("streamlit-launcher", "Launches the bundled Streamlit application with its companion configuration")
	configFile := kingpinApp.Flag("config", "Path to YAML launcher settings file").String()
	runnerFlag := kingpinApp.Flag("runner", "Runner command invoked to execute the application").String()
	activateEnvFlag := kingpinApp.Flag("activate-env", "Virtual environment root whose bin directory is prepended to the child PATH").String()
	dryRunFlag := kingpinApp.Flag("dry-run", "Validate and print the launch command without spawning").Bool()

	kingpin.MustParse(kingpinApp.Parse(args))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *runnerFlag != "" {
		overrides.Runner = runnerFlag
	}

	if *activateEnvFlag != "" {
		overrides.ActivateEnv = activateEnvFlag
	}

	if *dryRunFlag {
		overrides.DryRun = dryRunFlag
	}

	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	base, err := resolveBase()
	if err != nil {
		logger.Error("failed to resolve base directory", zap.Error(err))
		return 1
	}

	cfg, err := config.Load(base, overrides)
	if err != nil {
		logger.Error("failed to load configuration", zap.Error(err))
		return 1
	}

	app := application.NewAt(cfg, logger, base)
	return app.Run()
}
