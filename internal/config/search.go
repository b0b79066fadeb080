package config

import (
	"fmt"

	"github.com/lgbarn/othello-player/internal/errors"
)

// SearchMode selects how the engine picks among candidate moves.
type SearchMode int

const (
	// Greedy scores each candidate one ply deep and takes the best.
	Greedy SearchMode = iota
	// Maximin looks two plies deep and maximises the worst-case reply.
	Maximin
)

// String returns the lowercase name of the mode.
func (m SearchMode) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case Maximin:
		return "maximin"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// Mode is the selection strategy used on each turn.
	Mode SearchMode

	// PruneReplies stops scanning a candidate's replies once it can no
	// longer beat the best candidate so far. The chosen move is unchanged.
	PruneReplies bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Mode:         Maximin,
		PruneReplies: true,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Mode != Greedy && s.Mode != Maximin {
		return fmt.Errorf("search mode %v: %w", s.Mode, errors.ErrInvalidConfig)
	}
	return nil
}
