package player

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/othello-player/internal/config"
	"github.com/lgbarn/othello-player/internal/errors"
	"github.com/lgbarn/othello-player/internal/othello"
)

// Unlimited is the msLeft value meaning there is no time limit.
const Unlimited = -1

// Player owns the authoritative board for one side and decides that side's
// move each turn.
type Player struct {
	side     othello.Side
	opponent othello.Side
	board    Board
	mode     config.SearchMode
	engine   *Engine
	log      zerolog.Logger
	turn     int
}

// New creates a Player for side, starting from the initial position.
// A nil cfg selects the defaults.
func New(side othello.Side, cfg *config.Config) (*Player, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger().With().Str("side", side.String()).Logger()
	engine := NewEngine(NewEvaluator(cfg.Phase),
		WithReplyPruning(cfg.Search.PruneReplies),
		WithLogger(log),
	)
	return &Player{
		side:     side,
		opponent: side.Opposite(),
		board:    NewInitialBoard(),
		mode:     cfg.Search.Mode,
		engine:   engine,
		log:      log,
	}, nil
}

// Side returns the side this player moves for.
func (p *Player) Side() othello.Side {
	return p.side
}

// Mode returns the current search mode.
func (p *Player) Mode() config.SearchMode {
	return p.mode
}

// SetMode switches between greedy and maximin selection for later turns.
func (p *Player) SetMode(mode config.SearchMode) {
	p.mode = mode
}

// Turn returns how many times TakeTurn has been called.
func (p *Player) Turn() int {
	return p.turn
}

// SetBoard replaces the authoritative board with a copy of b.
func (p *Player) SetBoard(b Board) {
	p.board = b.Clone()
}

// Board returns a copy of the authoritative board.
func (p *Player) Board() Board {
	return p.board.Clone()
}

// TakeTurn records the opponent's last move (nil on the first turn or after
// a pass), then chooses, plays and returns this player's move. A nil move
// with a nil error means the player has no legal move and passes.
// msLeft is the time left for the whole game in milliseconds, or Unlimited.
// It is only logged; the search depth is fixed.
func (p *Player) TakeTurn(opponentsMove *othello.Move, msLeft int) (*othello.Move, error) {
	start := time.Now()
	p.turn++

	if opponentsMove != nil {
		if err := p.board.Apply(*opponentsMove, p.opponent); err != nil {
			return nil, p.turnError(err, p.opponent, opponentsMove)
		}
	}

	candidates := LegalMoves(p.board, p.side)
	if len(candidates) == 0 {
		p.log.Info().Int("turn", p.turn).Msg("pass")
		return nil, nil
	}

	m, err := p.engine.Select(p.mode, p.board.Clone(), p.side, p.opponent, candidates)
	if err != nil {
		return nil, p.turnError(err, p.side, nil)
	}
	if err := p.board.Apply(m, p.side); err != nil {
		return nil, p.turnError(err, p.side, &m)
	}

	p.log.Info().
		Int("turn", p.turn).
		Str("mode", p.mode.String()).
		Int("candidates", len(candidates)).
		Str("move", m.String()).
		Int("ms_left", msLeft).
		Dur("elapsed", time.Since(start)).
		Msg("turn-complete")
	return &m, nil
}

func (p *Player) turnError(err error, side othello.Side, m *othello.Move) error {
	te := &errors.TurnError{Err: err, Turn: p.turn, Side: side.String()}
	if m != nil {
		te.Move = m.String()
	}
	return te
}
