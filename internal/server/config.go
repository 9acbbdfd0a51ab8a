package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the serving shell.
const (
	DefaultAddress      = ":8080"
	DefaultMaxScenarios = 20000
)

// Config defines runtime parameters for the HTTP server. MaxScenarios caps
// the per-request scenario count; it is a shell policy, not an engine
// concern.
type Config struct {
	Address      string `yaml:"address"`
	LogLevel     string `yaml:"logLevel"`
	MaxScenarios int    `yaml:"maxScenarios"`
}

// LoadConfig loads the server configuration from YAML. A missing file (or
// an empty path) yields the defaults without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:      DefaultAddress,
		MaxScenarios: DefaultMaxScenarios,
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.MaxScenarios <= 0 {
		cfg.MaxScenarios = DefaultMaxScenarios
	}
	return cfg, nil
}
