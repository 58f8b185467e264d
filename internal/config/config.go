package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-directory configuration file kubesum looks for
// in the scan root when no explicit --config path is given.
const ConfigFileName = ".kubesum.yaml"

// Config represents kubesum configuration options
type Config struct {
	// Extensions lists the file extensions treated as configuration documents
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs lists directory names skipped during scanning
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// MaxConcurrency is the number of files summarized in parallel (1 = serial)
	MaxConcurrency int `yaml:"max_concurrency"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Extensions:     []string{".yaml"},
		ExcludeDirs:    nil,
		MaxConcurrency: 1,
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.MaxConcurrency < 1 {
		cfg.MaxConcurrency = 1
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .kubesum.yaml in dir, falling
// back to defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ConfigFileName))
}
