package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional defaults so rates don't have to be retyped on every
// run. All values can be overridden by command-line flags.
type Config struct {
	CurrentRate string   `yaml:"current_rate,omitempty"` // Flat rate in dollars per kWh
	TouLocation string   `yaml:"tou_location,omitempty"` // Named service area for built-in TOU rates
	TouRates    *RateSet `yaml:"tou_rates,omitempty"`    // Explicit TOU rates (exclusive with tou_location)
}

// RateSet holds explicit TOU rates in dollars per kWh
type RateSet struct {
	Off  string `yaml:"off"`
	Mid  string `yaml:"mid"`
	Peak string `yaml:"peak"`
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Validate rejects configs that specify TOU rates two different ways
func (c *Config) Validate() error {
	if c.TouLocation != "" && c.TouRates != nil {
		return fmt.Errorf("tou_location and tou_rates are mutually exclusive")
	}
	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}
