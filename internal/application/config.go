package application

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for a simulation run, loaded
// from a YAML file and validated with struct tags before use.
type Config struct {
	// BestPartyPath is the path to the tab-separated best-party survey
	// export (raw respondent counts per party and survey date).
	BestPartyPath string `yaml:"best_party_path" validate:"required"`

	// NextBestPartyPath is the path to the tab-separated next-best-party
	// survey export (redistribution share percentages per party pair
	// and survey date).
	NextBestPartyPath string `yaml:"next_best_party_path" validate:"required"`

	// Date selects the survey date column in both source tables.
	Date string `yaml:"date" validate:"required"`

	// Threshold is the winning vote share in percentage points.
	// Defaults to 50 when omitted.
	Threshold float64 `yaml:"threshold" validate:"omitempty,gt=0,lte=100"`
}

// LoadConfig reads, defaults, and validates a simulation configuration
// from the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if config.Threshold == 0 {
		config.Threshold = DefaultSimulatorConfig().Threshold
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// SimulatorConfig derives the simulator parameters from the loaded
// configuration.
func (c *Config) SimulatorConfig() SimulatorConfig {
	return SimulatorConfig{Threshold: c.Threshold}
}
