// Package config loads and validates the benchmark configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shinso-labs/movebench/internal/scoring"
)

const (
	DefaultTimeoutSec      = 60
	DefaultConfidenceLevel = 0.95
	DefaultErrorsStored    = 10
	DefaultErrorsShown     = 5
	DefaultMaxWorkers      = 4
)

// ModelSpec names one model under evaluation and where its translated
// packages live.
type ModelSpec struct {
	ID        string `yaml:"id"`
	OutputDir string `yaml:"output_dir"`
}

// CaseSpec names one benchmark contract and how many tests its
// reference test suite contains.
type CaseSpec struct {
	ID            string `yaml:"id"`
	ExpectedTests int    `yaml:"expected_tests"`
}

// Config is the root of the benchmark configuration file.
type Config struct {
	Name   string      `yaml:"name"`
	Models []ModelSpec `yaml:"models"`
	Cases  []CaseSpec  `yaml:"cases"`

	Scoring scoring.Weights `yaml:"scoring"`

	// TimeoutSec bounds a single `sui move test` invocation.
	TimeoutSec      int     `yaml:"timeout_seconds"`
	ConfidenceLevel float64 `yaml:"confidence_level"`

	// ErrorsStored is how many ranked error categories a run record
	// keeps; ErrorsShown is how many reports display.
	ErrorsStored int `yaml:"errors_stored"`
	ErrorsShown  int `yaml:"errors_shown"`

	Parallel   bool   `yaml:"parallel"`
	MaxWorkers int    `yaml:"max_workers"`
	OutputDir  string `yaml:"output_dir"`
}

// Load reads a configuration file, applies defaults, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TimeoutSec == 0 {
		c.TimeoutSec = DefaultTimeoutSec
	}
	if c.ConfidenceLevel == 0 {
		c.ConfidenceLevel = DefaultConfidenceLevel
	}
	if c.ErrorsStored == 0 {
		c.ErrorsStored = DefaultErrorsStored
	}
	if c.ErrorsShown == 0 {
		c.ErrorsShown = DefaultErrorsShown
	}
	if c.MaxWorkers == 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
	if c.OutputDir == "" {
		c.OutputDir = "results"
	}
	if c.Scoring == (scoring.Weights{}) {
		c.Scoring = scoring.DefaultWeights()
	}
}

// Validate checks the configuration for contradictions a run could not
// recover from.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(c.Models) == 0 {
		return fmt.Errorf("at least one model is required")
	}
	if len(c.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}

	seenModels := make(map[string]bool, len(c.Models))
	for i, m := range c.Models {
		if m.ID == "" {
			return fmt.Errorf("models[%d]: id is required", i)
		}
		if m.OutputDir == "" {
			return fmt.Errorf("model %s: output_dir is required", m.ID)
		}
		if seenModels[m.ID] {
			return fmt.Errorf("duplicate model id %q", m.ID)
		}
		seenModels[m.ID] = true
	}

	seenCases := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.ID == "" {
			return fmt.Errorf("cases[%d]: id is required", i)
		}
		if cs.ExpectedTests <= 0 {
			return fmt.Errorf("case %s: expected_tests must be positive, got %d", cs.ID, cs.ExpectedTests)
		}
		if seenCases[cs.ID] {
			return fmt.Errorf("duplicate case id %q", cs.ID)
		}
		seenCases[cs.ID] = true
	}

	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if c.TimeoutSec <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSec)
	}
	if c.ConfidenceLevel <= 0 || c.ConfidenceLevel >= 1 {
		return fmt.Errorf("confidence_level must be in (0, 1), got %v", c.ConfidenceLevel)
	}
	if c.ErrorsShown > c.ErrorsStored {
		return fmt.Errorf("errors_shown (%d) cannot exceed errors_stored (%d)", c.ErrorsShown, c.ErrorsStored)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive, got %d", c.MaxWorkers)
	}
	return nil
}

// Timeout returns the per-invocation timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}
