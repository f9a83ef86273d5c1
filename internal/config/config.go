/*
PURPOSE:
  Defines the configuration structure and loading logic for GPA Tracker.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the prompt, output precision and history size.
  - Optionally load a results file when the REPL starts.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (GPA_TRACKER_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error (falls back to defaults).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (e.g., 2 decimals, unbounded history).

USAGE:
  cfg, err := config.Load("gpa-tracker.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct, DefaultConfig() and applyEnv().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "GPA_TRACKER_"

// Config represents the full configuration for GPA Tracker.
type Config struct {
	Prompt string `yaml:"prompt"`
	// DataFile is imported when the REPL starts (optional).
	DataFile string `yaml:"data_file"`
	// GPAPrecision is the number of decimals printed by "gpa"; -1 prints the shortest form.
	GPAPrecision int `yaml:"gpa_precision"`
	// HistoryLimit caps the number of remembered lines; 0 keeps everything.
	HistoryLimit int    `yaml:"history_limit"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt:       "> ",
		GPAPrecision: 2,
		HistoryLimit: 0,
		LogLevel:     "warn",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"gpa-tracker.yaml", ".gpa-tracker.yaml"}
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if data != nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookup(EnvPrefix + "DATA_FILE"); ok {
		c.DataFile = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "GPA_PRECISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sGPA_PRECISION %q: %w", EnvPrefix, v, err)
		}
		c.GPAPrecision = n
	}
	if v, ok := lookup(EnvPrefix + "HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sHISTORY_LIMIT %q: %w", EnvPrefix, v, err)
		}
		c.HistoryLimit = n
	}
	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	if c.GPAPrecision < -1 {
		return fmt.Errorf("gpa_precision must be >= -1, got %d", c.GPAPrecision)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
