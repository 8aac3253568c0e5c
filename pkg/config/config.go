// Package config handles loading and managing Kickoff configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Kickoff.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Prediction PredictionConfig `yaml:"prediction"`
}

// DataConfig controls where season CSV files live.
type DataConfig struct {
	Dir string `yaml:"dir"` // directory of <season>.csv files
}

// PredictionConfig controls the chain search behind predictions.
type PredictionConfig struct {
	Depth     int `yaml:"depth"`      // maximum matches per chain
	MaxVisits int `yaml:"max_visits"` // node budget, 0 = unlimited
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "assets",
		},
		Prediction: PredictionConfig{
			Depth: 4,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .kickoff/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".kickoff", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for built league snapshots.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "kickoff")
}

// LeagueDir returns the directory for persisted league JSON snapshots.
func LeagueDir() string {
	return filepath.Join(CacheDir(), "leagues")
}
