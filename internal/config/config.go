// Package config loads figsearch settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/figsearch/bitmap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "figsearch.yaml"

// Config holds all figsearch configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Parse   ParseConfig   `yaml:"parse"`
	Search  SearchConfig  `yaml:"search"`
	Convert ConvertConfig `yaml:"convert"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// ParseConfig bounds the grid parser.
type ParseConfig struct {
	MaxCells int `yaml:"max_cells"`
}

// SearchConfig configures the searches.
type SearchConfig struct {
	// Workers > 1 enables the partitioned searches; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// ConvertConfig configures image conversion.
type ConvertConfig struct {
	Threshold int    `yaml:"threshold"` // 0..255
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Scaler    string `yaml:"scaler"`    // nearest, bilinear, catmullrom
	Separator string `yaml:"separator"` // written between cells
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Parse:   ParseConfig{MaxCells: bitmap.DefaultMaxCells},
		Search:  SearchConfig{Workers: 1},
		Convert: ConvertConfig{Threshold: 128, Scaler: "bilinear", Separator: " "},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies FIGSEARCH_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if lvl := os.Getenv("FIGSEARCH_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if w := os.Getenv("FIGSEARCH_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("invalid FIGSEARCH_WORKERS %q: %w", w, err)
		}
		c.Search.Workers = n
	}

	return nil
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLevel := false
	for _, l := range ValidLevels {
		if strings.EqualFold(c.Logging.Level, l) {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging format: %s (valid: console, json)", c.Logging.Format)
	}
	if c.Parse.MaxCells <= 0 {
		return fmt.Errorf("parse.max_cells must be > 0, got %d", c.Parse.MaxCells)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("search.workers must be >= 0, got %d", c.Search.Workers)
	}
	if c.Convert.Threshold < 0 || c.Convert.Threshold > 255 {
		return fmt.Errorf("convert.threshold must be in [0,255], got %d", c.Convert.Threshold)
	}
	if c.Convert.Width < 0 || c.Convert.Height < 0 || (c.Convert.Width == 0) != (c.Convert.Height == 0) {
		return fmt.Errorf("convert.width and convert.height must both be > 0 or both be 0")
	}
	if strings.Trim(c.Convert.Separator, " \t") != "" {
		return fmt.Errorf("convert.separator must hold only spaces or tabs, got %q", c.Convert.Separator)
	}

	return nil
}
