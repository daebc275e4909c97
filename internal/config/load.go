package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded config holds an unusable value.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
// Path records the file that was read, if any.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.Path = path
	}

	applyFlags(cfg)
	return cfg, cfg.Validate()
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./mdlx.yaml",
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	if env := os.Getenv("MDLX_CONFIG"); env != "" {
		candidates = append([]string{env}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// appName names the per-user config directory.
const appName = "mdlx"

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName)
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate reports settings that cannot be honored.
func (c *Config) Validate() error {
	if c.History.MaxDepth < 0 {
		return fmt.Errorf("%w: history.max_depth must be >= 0, got %d", ErrInvalid, c.History.MaxDepth)
	}
	return nil
}
