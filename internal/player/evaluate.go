package player

import (
	"github.com/lgbarn/othello-player/internal/config"
	"github.com/lgbarn/othello-player/internal/othello"
)

// Evaluator scores positions, choosing the early, mid or late scoring
// function of the Board by the total number of discs.
type Evaluator struct {
	phase config.PhaseConfig
}

// NewEvaluator creates an Evaluator using the given thresholds.
// A nil config selects the defaults.
func NewEvaluator(phase *config.PhaseConfig) *Evaluator {
	if phase == nil {
		phase = config.NewPhaseConfig()
	}
	return &Evaluator{phase: *phase}
}

// Phase classifies b by its total disc count.
func (e *Evaluator) Phase(b Board) config.Phase {
	return e.phase.PhaseOf(b.PieceCount(othello.Black) + b.PieceCount(othello.White))
}

// Evaluate returns the desirability of b for perspective; higher is better.
func (e *Evaluator) Evaluate(b Board, perspective, opponent othello.Side) int {
	switch e.Phase(b) {
	case config.Early:
		return b.EarlyScore(perspective, opponent)
	case config.Late:
		return b.LateScore(perspective, opponent)
	default:
		return b.MidScore(perspective, opponent)
	}
}
