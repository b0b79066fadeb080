package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns a copy of the Config built so far. Later calls on the
// builder do not affect configs it has already returned.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg.Clone()
}

// WithMode sets the search mode.
func (b *ConfigBuilder) WithMode(mode SearchMode) *ConfigBuilder {
	b.cfg.Search.Mode = mode
	return b
}

// WithReplyPruning enables or disables reply pruning in maximin search.
func (b *ConfigBuilder) WithReplyPruning(enabled bool) *ConfigBuilder {
	b.cfg.Search.PruneReplies = enabled
	return b
}

// WithPhaseThresholds sets the early and late disc-count thresholds.
func (b *ConfigBuilder) WithPhaseThresholds(earlyBelow, lateAbove int) *ConfigBuilder {
	b.cfg.Phase.EarlyBelow = earlyBelow
	b.cfg.Phase.LateAbove = lateAbove
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
