// Package config loads holdem-odds settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/holdem-odds/internal/equity"
)

// Output formats understood by the report printer.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Config represents the complete holdem-odds configuration
type Config struct {
	Simulation SimulationConfig
	Sweep      SweepConfig
	Output     OutputConfig
	Log        LogConfig
}

// SimulationConfig controls the Monte Carlo engine
type SimulationConfig struct {
	Trials    int   `hcl:"trials,optional"`
	Workers   int   `hcl:"workers,optional"`
	ChunkSize int   `hcl:"chunk_size,optional"`
	Seed      int64 `hcl:"seed,optional"`
}

// SweepConfig is the inclusive range of player counts to simulate
type SweepConfig struct {
	MinPlayers int `hcl:"min_players,optional"`
	MaxPlayers int `hcl:"max_players,optional"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format  string `hcl:"format,optional"`
	NoColor bool   `hcl:"no_color,optional"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// fileConfig mirrors the HCL layout, where every block is optional.
type fileConfig struct {
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Sweep      *SweepConfig      `hcl:"sweep,block"`
	Output     *OutputConfig     `hcl:"output,block"`
	Log        *LogConfig        `hcl:"log,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Trials:    equity.DefaultTrials,
			ChunkSize: equity.DefaultChunkSize,
		},
		Sweep: SweepConfig{
			MinPlayers: 2,
			MaxPlayers: 5,
		},
		Output: OutputConfig{
			Format: FormatTable,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills any unset values with defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if s := raw.Simulation; s != nil {
		if s.Trials != 0 {
			config.Simulation.Trials = s.Trials
		}
		if s.ChunkSize != 0 {
			config.Simulation.ChunkSize = s.ChunkSize
		}
		config.Simulation.Workers = s.Workers
		config.Simulation.Seed = s.Seed
	}
	if s := raw.Sweep; s != nil {
		if s.MinPlayers != 0 {
			config.Sweep.MinPlayers = s.MinPlayers
		}
		if s.MaxPlayers != 0 {
			config.Sweep.MaxPlayers = s.MaxPlayers
		}
	}
	if o := raw.Output; o != nil {
		if o.Format != "" {
			config.Output.Format = o.Format
		}
		config.Output.NoColor = o.NoColor
	}
	if l := raw.Log; l != nil && l.Level != "" {
		config.Log.Level = l.Level
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Simulation.ChunkSize)
	}

	if c.Sweep.MinPlayers < equity.MinPlayers || c.Sweep.MaxPlayers > equity.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d-%d",
			equity.MinPlayers, equity.MaxPlayers, c.Sweep.MinPlayers, c.Sweep.MaxPlayers)
	}
	if c.Sweep.MinPlayers > c.Sweep.MaxPlayers {
		return fmt.Errorf("min players %d exceeds max players %d", c.Sweep.MinPlayers, c.Sweep.MaxPlayers)
	}

	switch c.Output.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// Engine returns the simulator settings for this configuration.
func (c *Config) Engine(logger *log.Logger) equity.Config {
	return equity.Config{
		Trials:    c.Simulation.Trials,
		Workers:   c.Simulation.Workers,
		ChunkSize: c.Simulation.ChunkSize,
		Seed:      c.Simulation.Seed,
		Logger:    logger,
	}
}
