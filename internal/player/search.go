package player

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/lgbarn/othello-player/internal/config"
	"github.com/lgbarn/othello-player/internal/errors"
	"github.com/lgbarn/othello-player/internal/othello"
)

// ScoredMove pairs a candidate with the value the search assigned it.
type ScoredMove struct {
	Move  othello.Move
	Score int
}

// Engine chooses one move from a candidate set. It only ever mutates
// clones of the board it is given.
type Engine struct {
	eval  *Evaluator
	prune bool
	log   zerolog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithReplyPruning stops scoring a candidate's replies once the candidate
// can no longer be chosen. It never changes the selected move.
func WithReplyPruning(enabled bool) EngineOption {
	return func(e *Engine) {
		e.prune = enabled
	}
}

// WithLogger sets the logger used for per-candidate debug events.
func WithLogger(log zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an Engine scoring positions with eval.
func NewEngine(eval *Evaluator, opts ...EngineOption) *Engine {
	e := &Engine{
		eval: eval,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Select dispatches to SelectGreedy or SelectMaximin.
func (e *Engine) Select(mode config.SearchMode, b Board, side, opponent othello.Side, candidates []othello.Move) (othello.Move, error) {
	switch mode {
	case config.Greedy:
		return e.SelectGreedy(b, side, opponent, candidates)
	case config.Maximin:
		return e.SelectMaximin(b, side, opponent, candidates)
	default:
		return othello.Move{}, fmt.Errorf("search mode %v: %w", mode, errors.ErrInvalidConfig)
	}
}

// SelectGreedy plays each candidate on a clone, scores the result for side
// and returns the highest scoring candidate. Ties go to the earliest.
func (e *Engine) SelectGreedy(b Board, side, opponent othello.Side, candidates []othello.Move) (othello.Move, error) {
	if len(candidates) == 0 {
		return othello.Move{}, errors.ErrNoCandidates
	}
	scored, err := e.ScoreGreedy(b, side, opponent, candidates)
	if err != nil {
		return othello.Move{}, err
	}
	return best(scored).Move, nil
}

// ScoreGreedy returns the one-ply score of every candidate, in order.
func (e *Engine) ScoreGreedy(b Board, side, opponent othello.Side, candidates []othello.Move) ([]ScoredMove, error) {
	scored := make([]ScoredMove, 0, len(candidates))
	for _, m := range candidates {
		after := b.Clone()
		if err := after.Apply(m, side); err != nil {
			return nil, errors.Wrapf(err, "greedy candidate %s", m)
		}
		score := e.eval.Evaluate(after, side, opponent)
		e.log.Debug().Str("mode", "greedy").Str("move", m.String()).Int("score", score).Msg("candidate-scored")
		scored = append(scored, ScoredMove{Move: m, Score: score})
	}
	return scored, nil
}

// SelectMaximin returns the candidate whose worst-case outcome over every
// opponent reply is best for side. Ties go to the earliest candidate.
func (e *Engine) SelectMaximin(b Board, side, opponent othello.Side, candidates []othello.Move) (othello.Move, error) {
	if len(candidates) == 0 {
		return othello.Move{}, errors.ErrNoCandidates
	}
	scored, err := e.scoreMaximin(b, side, opponent, candidates, e.prune)
	if err != nil {
		return othello.Move{}, err
	}
	return best(scored).Move, nil
}

// ScoreMaximin returns the worst-case value of every candidate, in order.
// It never prunes, so each score is exact.
func (e *Engine) ScoreMaximin(b Board, side, opponent othello.Side, candidates []othello.Move) ([]ScoredMove, error) {
	return e.scoreMaximin(b, side, opponent, candidates, false)
}

// scoreMaximin values each candidate by its worst reply. With prune set, a
// candidate whose running minimum falls to the best value so far stops
// early; its recorded score is then only an upper bound, which can never be
// strictly greater than the best and so never changes the choice.
func (e *Engine) scoreMaximin(b Board, side, opponent othello.Side, candidates []othello.Move, prune bool) ([]ScoredMove, error) {
	scored := make([]ScoredMove, 0, len(candidates))
	bestSoFar := math.MinInt
	for _, m := range candidates {
		afterSelf := b.Clone()
		if err := afterSelf.Apply(m, side); err != nil {
			return nil, errors.Wrapf(err, "maximin candidate %s", m)
		}

		bound := math.MinInt
		if prune {
			bound = bestSoFar
		}
		worst, replies, err := e.worstReply(afterSelf, side, opponent, bound)
		if err != nil {
			return nil, errors.Wrapf(err, "maximin candidate %s", m)
		}
		e.log.Debug().Str("mode", "maximin").Str("move", m.String()).
			Int("replies", replies).Int("score", worst).Msg("candidate-scored")

		scored = append(scored, ScoredMove{Move: m, Score: worst})
		if worst > bestSoFar {
			bestSoFar = worst
		}
	}
	return scored, nil
}

// worstReply returns the lowest score for side over opponent's replies on
// afterSelf, and how many replies were examined. With no reply the opponent
// passes and afterSelf itself is scored. Scanning stops once the minimum is
// at or below bound.
func (e *Engine) worstReply(afterSelf Board, side, opponent othello.Side, bound int) (int, int, error) {
	replies := LegalMoves(afterSelf, opponent)
	if len(replies) == 0 {
		return e.eval.Evaluate(afterSelf, side, opponent), 0, nil
	}

	worst := math.MaxInt
	for i, r := range replies {
		afterReply := afterSelf.Clone()
		if err := afterReply.Apply(r, opponent); err != nil {
			return 0, i, errors.Wrapf(err, "reply %s", r)
		}
		if score := e.eval.Evaluate(afterReply, side, opponent); score < worst {
			worst = score
		}
		if worst <= bound {
			return worst, i + 1, nil
		}
	}
	return worst, len(replies), nil
}

// best returns the first entry with the strictly greatest score.
func best(scored []ScoredMove) ScoredMove {
	top := scored[0]
	for _, s := range scored[1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	return top
}
