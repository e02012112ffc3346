package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAlgorithm = "PATHVIZ_ALGORITHM"
	EnvHeuristic = "PATHVIZ_HEURISTIC"
	EnvSpeed     = "PATHVIZ_SPEED"
	EnvRows      = "PATHVIZ_ROWS"
	EnvCols      = "PATHVIZ_COLS"
	EnvLogLevel  = "PATHVIZ_LOG_LEVEL"
)

// Load overlays the YAML file at path (if path is not empty) and the
// environment on Default, normalizes and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	loadEnvironmentVariables(&cfg)
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func loadEnvironmentVariables(cfg *Config) {
	if val := os.Getenv(EnvAlgorithm); val != "" {
		cfg.Algorithm.Name = val
	}
	if val := os.Getenv(EnvHeuristic); val != "" {
		cfg.Algorithm.Heuristic = val
	}
	if val := os.Getenv(EnvSpeed); val != "" {
		cfg.Scheduler.Speed = val
	}
	if val := os.Getenv(EnvRows); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Grid.Rows = n
		}
	}
	if val := os.Getenv(EnvCols); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Grid.Cols = n
		}
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.Log.Level = val
	}
}
