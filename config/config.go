// Package config provides configuration loading for the aoc command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2024/puzzle"
)

// DefaultFile is the config file looked up in the working directory when
// no path is given.
const DefaultFile = "aoc.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config represents the complete aoc configuration
type Config struct {
	// Inputs is the directory holding dayNN.txt files
	Inputs string `yaml:"inputs"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// Days overrides per-day parameters, keyed by day number
	Days map[int]puzzle.Params `yaml:"days,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Inputs:   "inputs",
		LogLevel: "info",
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Inputs == "" {
		return fmt.Errorf("%w: inputs is required", ErrInvalid)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("%w: log_level %q is not one of debug, info, warn, error", ErrInvalid, c.LogLevel)
	}
	for day, params := range c.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("%w: days.%d is outside 1..25", ErrInvalid, day)
		}
		for key, v := range params {
			switch v.(type) {
			case map[string]any, []any:
				return fmt.Errorf("%w: days.%d.%s must be a scalar", ErrInvalid, day, key)
			}
		}
	}

	return nil
}

// DayParams returns the overrides for day (nil when none).
func (c *Config) DayParams(day int) puzzle.Params {
	return c.Days[day]
}

// LoadFromFile loads configuration from a YAML file over the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Inputs != "" {
		c.Inputs = other.Inputs
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	for day, params := range other.Days {
		if c.Days == nil {
			c.Days = make(map[int]puzzle.Params)
		}
		c.Days[day] = c.Days[day].Merge(params)
	}
}

// Load resolves the configuration: defaults, then the file at path (or
// DefaultFile when path is empty and that file exists), then validation.
// An explicitly named file must exist.
func Load(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	fileConfig, err := LoadFromFile(path)
	switch {
	case err == nil:
		logger.Debug("loaded config", zap.String("path", path))
		config.Merge(fileConfig)
	case !explicit && errors.Is(err, fs.ErrNotExist):
		logger.Debug("no config file, using defaults")
	default:
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
