package config

import (
	"fmt"

	"github.com/lgbarn/othello-player/internal/errors"
)

// Default phase thresholds, in total discs on the board.
const (
	DefaultEarlyBelow = 13
	DefaultLateAbove  = 54
)

// Phase is a stage of the game classified by disc count.
type Phase int

const (
	Early Phase = iota
	Mid
	Late
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case Early:
		return "early"
	case Late:
		return "late"
	default:
		return "mid"
	}
}

// PhaseConfig holds the disc-count thresholds between game phases.
type PhaseConfig struct {
	// Positions with fewer discs than this are early game.
	EarlyBelow int

	// Positions with more discs than this are late game.
	LateAbove int
}

// NewPhaseConfig creates a PhaseConfig with default values.
func NewPhaseConfig() *PhaseConfig {
	return &PhaseConfig{
		EarlyBelow: DefaultEarlyBelow,
		LateAbove:  DefaultLateAbove,
	}
}

// PhaseOf classifies a total disc count.
func (p *PhaseConfig) PhaseOf(total int) Phase {
	switch {
	case total < p.EarlyBelow:
		return Early
	case total > p.LateAbove:
		return Late
	default:
		return Mid
	}
}

// Validate checks that the thresholds are ordered and fit on the board.
func (p *PhaseConfig) Validate() error {
	if p.EarlyBelow < 0 {
		return fmt.Errorf("early threshold (%d) is negative: %w", p.EarlyBelow, errors.ErrInvalidConfig)
	}
	if p.LateAbove < p.EarlyBelow {
		return fmt.Errorf("late threshold (%d) < early threshold (%d): %w",
			p.LateAbove, p.EarlyBelow, errors.ErrInvalidConfig)
	}
	if p.LateAbove > 64 {
		return fmt.Errorf("late threshold (%d) exceeds board size: %w", p.LateAbove, errors.ErrInvalidConfig)
	}
	return nil
}
