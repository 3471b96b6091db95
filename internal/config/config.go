package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "outlay.yaml"

// Config represents the top-level outlay.yaml configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Display DisplayConfig `yaml:"display"`
}

// StoreConfig locates the backing expenses file. A relative path is
// resolved against the config file's directory.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig controls presentation formatting.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Load reads an outlay.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no outlay.yaml exists.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "expenses.csv",
		},
		Display: DisplayConfig{
			CurrencySymbol: "₹",
		},
	}
}
