// Package config provides configuration for the othello decision engine.
package config

import (
	"io"
	"os"
)

// Config holds all engine configuration.
type Config struct {
	// Search mode and budget handling.
	Search *SearchConfig

	// Piece-count thresholds that pick the scoring phase.
	Phase *PhaseConfig

	// Verbosity: 0=nothing, 1=one line per turn, 2=per-candidate scores.
	Verbosity int

	// LogFile receives log output.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:    NewSearchConfig(),
		Phase:     NewPhaseConfig(),
		Verbosity: 0,
		LogFile:   os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Phase.Validate()
}

// Clone returns a copy whose sections can be modified independently.
func (c *Config) Clone() *Config {
	search := *c.Search
	phase := *c.Phase
	return &Config{
		Search:    &search,
		Phase:     &phase,
		Verbosity: c.Verbosity,
		LogFile:   c.LogFile,
	}
}
