package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultRunner = "streamlit"

	// settingsFileName is the optional launcher settings file looked up
	// beside the binary when no explicit --config flag is given.
	settingsFileName = "launcher.yaml"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
//
// The two companion file paths (.streamlit/config.toml and streamlit_app.py)
// are deliberately not configurable; only the runner invocation around them is.
type Config struct {
	Runner      string
	ActivateEnv string
	DryRun      bool
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	Runner      string `yaml:"runner"`
	ActivateEnv string `yaml:"activate_env"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	Runner      *string
	ActivateEnv *string
	DryRun      *bool
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
//
// baseDir is the launcher's own directory; a launcher.yaml found there is
// applied when no explicit config file is requested. A missing default file
// is not an error, a missing explicit one is.
func Load(baseDir string, overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables
	applyEnvConfig(&cfg)

	// Locate the YAML file: explicit path wins, otherwise probe beside the binary
	yamlPath := ""
	required := false
	if overrides != nil && overrides.ConfigFile != "" {
		yamlPath = overrides.ConfigFile
		required = true
	} else if baseDir != "" {
		yamlPath = filepath.Join(baseDir, settingsFileName)
	}

	if yamlPath != "" {
		yamlCfg, err := loadFromFile(yamlPath)
		switch {
		case err == nil:
			applyYAMLConfig(&cfg, yamlCfg)
		case required || !os.IsNotExist(err):
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Runner: defaultRunner,
	}
}

// loadFromFile loads configuration from a YAML file. A missing file is
// reported with an error satisfying os.IsNotExist.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Runner != "" {
		cfg.Runner = yamlCfg.Runner
	}

	if yamlCfg.ActivateEnv != "" {
		cfg.ActivateEnv = yamlCfg.ActivateEnv
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if runner := strings.TrimSpace(os.Getenv("STREAMLIT_EXE")); runner != "" {
		cfg.Runner = runner
	}

	if venv := strings.TrimSpace(os.Getenv("LAUNCHER_ACTIVATE_ENV")); venv != "" {
		cfg.ActivateEnv = venv
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Runner != nil && *overrides.Runner != "" {
		cfg.Runner = *overrides.Runner
	}

	if overrides.ActivateEnv != nil && *overrides.ActivateEnv != "" {
		cfg.ActivateEnv = *overrides.ActivateEnv
	}

	if overrides.DryRun != nil {
		cfg.DryRun = *overrides.DryRun
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Runner) == "" {
		return fmt.Errorf("runner command cannot be empty")
	}
	if cfg.ActivateEnv != "" {
		info, err := os.Stat(cfg.ActivateEnv)
		if err != nil {
			return fmt.Errorf("activate_env %q does not exist", cfg.ActivateEnv)
		}
		if !info.IsDir() {
			return fmt.Errorf("activate_env %q is not a directory", cfg.ActivateEnv)
		}
	}
	return nil
}
