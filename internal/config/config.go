package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"bytematch/internal/report"
)

// Config holds the effective settings for one invocation.
type Config struct {
	Format   report.Format `yaml:"format"`
	MinScore *float64      `yaml:"min_score,omitempty"`
	Verbose  bool          `yaml:"verbose"`
}

// Error reports an invalid or unreadable config file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %v", e.Err)
	}

	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{Format: report.FormatText}
}

// LoadFile loads and validates a YAML config file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	cfg, err := Parse(data)
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			ce.Path = path
		}

		return Config{}, err
	}

	return cfg, nil
}

// Parse parses and validates YAML config data.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &Error{Err: fmt.Errorf("failed to parse config YAML: %w", err)}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, &Error{Err: err}
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = report.FormatText
	}
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(string(c.Format)); err != nil {
		return err
	}

	if c.MinScore != nil && (math.IsNaN(*c.MinScore) || *c.MinScore < 0 || *c.MinScore > 1) {
		return fmt.Errorf("min_score must be within [0, 1], got %v", *c.MinScore)
	}

	return nil
}

// Passes reports whether score satisfies the configured threshold.
func (c Config) Passes(score float64) bool {
	return c.MinScore == nil || score >= *c.MinScore
}
