package config

import "github.com/rs/zerolog"

// Logger builds a structured logger writing to LogFile at a level chosen
// by Verbosity. A nil LogFile or zero verbosity yields a disabled logger.
func (c *Config) Logger() zerolog.Logger {
	if c.LogFile == nil || c.Verbosity <= 0 {
		return zerolog.Nop()
	}
	level := zerolog.InfoLevel
	if c.Verbosity >= 2 {
		level = zerolog.DebugLevel
	}
	return zerolog.New(c.LogFile).Level(level).With().Timestamp().Logger()
}
