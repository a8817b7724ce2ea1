package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults, overridable per run by flags.
type Config struct {
	// Backend selects the default execution target:
	// threads, fiber, looppar, or webgpu.
	Backend string `yaml:"backend"`

	// Device selects the device ordinal within the backend.
	Device int `yaml:"device"`

	// Workers sets the looppar worker pool size; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Blocking makes queues block in Enqueue until the task finished.
	Blocking bool `yaml:"blocking"`

	Pi struct {
		Points int     `yaml:"points"`
		Radius float64 `yaml:"radius"`
		Dist   string  `yaml:"dist"`
	} `yaml:"pi"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{
		Backend:  "looppar",
		Device:   0,
		Workers:  0,
		Blocking: true,
	}
	cfg.Pi.Points = 10000
	cfg.Pi.Radius = 10.0
	cfg.Pi.Dist = "blocked"
	return cfg
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
