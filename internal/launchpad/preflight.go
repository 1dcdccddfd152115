package launchpad

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// streamlitConfig mirrors the subset of config.toml the launcher reports on.
type streamlitConfig struct {
	Server struct {
		Port     int  `toml:"port"`
		Headless bool `toml:"headless"`
	} `toml:"server"`
}

// Preflight parses the configuration file and returns the server port it
// declares, or 0 when none is set. Existence has already been verified by
// Validate; a read or parse failure here is a warning condition for the
// caller, not grounds to abort the launch.
func (p Paths) Preflight() (int, error) {
	data, err := os.ReadFile(p.Config)
	if err != nil {
		return 0, fmt.Errorf("read configuration file: %w", err)
	}

	var cfg streamlitConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return 0, fmt.Errorf("parse TOML: %w", err)
	}

	return cfg.Server.Port, nil
}
