/*
PURPOSE:
  Defines the configuration structure and loading logic for Rook Runner.
  Suites are data; so is the telemetry case table.

REQUIREMENTS:
  User-specified:
  - Allow configuration of binary paths, timeouts, and search depths.
  - The telemetry case table lives here, not as a constant in the scorer.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - A missing config file is fine (defaults); a broken one is not.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing file falls back to defaults without error.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be generous (engines take minutes at depth 7).

USAGE:
  cfg, err := config.Load("rook_runner.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/rook-runner/internal/model"
)

// Config represents the full configuration for Rook Runner.
type Config struct {
	// Binary paths. Empty means "must be supplied on the command line".
	EngineBin    string `yaml:"engine_bin"`
	ReferenceBin string `yaml:"reference_bin"`
	ConverterBin string `yaml:"converter_bin"`

	// Per-invocation wall-clock bounds for one-shot runs, per-read bounds
	// for interactive sessions, and the converter's own short leash.
	VerifyTimeout    time.Duration `yaml:"verify_timeout"`
	TelemetryTimeout time.Duration `yaml:"telemetry_timeout"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	ConvertTimeout   time.Duration `yaml:"convert_timeout"`

	// Tactical run shapes: quick is a smoke test, full is the whole suite.
	QuickDepth int `yaml:"quick_depth"`
	FullDepth  int `yaml:"full_depth"`
	QuickLimit int `yaml:"quick_limit"`

	// TelemetryCases is the benchmark table for the telemetry command.
	TelemetryCases []model.TelemetryCase `yaml:"telemetry_cases"`
}

// startposFEN is the standard-game starting position, the one benchmark
// every engine can be expected to handle.
const startposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		VerifyTimeout:    120 * time.Second,
		TelemetryTimeout: 600 * time.Second,
		ReadTimeout:      120 * time.Second,
		ConvertTimeout:   10 * time.Second,
		QuickDepth:       3,
		FullDepth:        6,
		QuickLimit:       10,
		TelemetryCases: []model.TelemetryCase{
			{Name: "startpos-d6", FEN: startposFEN, Depth: 6, MinNPS: 20_000_000},
			{Name: "startpos-d7", FEN: startposFEN, Depth: 7, MaxTimeMS: 60_000},
		},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
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
		defaults := []string{"rook_runner.yaml", "runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
