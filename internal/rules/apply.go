package rules

import (
	"fmt"

	"github.com/lgbarn/othello-player/internal/errors"
	"github.com/lgbarn/othello-player/internal/othello"
)

// ApplyMove places side's disc on m and flips every bracketed line.
// An illegal move returns an error wrapping ErrIllegalMove and leaves the
// board untouched.
func ApplyMove(board *othello.Board, m othello.Move, side othello.Side) error {
	flips := Flips(board, m, side)
	if len(flips) == 0 {
		return fmt.Errorf("%s at %s: %w", side, m, errors.ErrIllegalMove)
	}

	own := othello.DiscOf(side)
	board.Set(m, own)
	for _, sq := range flips {
		board.Set(sq, own)
	}
	return nil
}
