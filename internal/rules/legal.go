// Package rules provides Othello move validation, move application and the
// phase-specific position scores.
package rules

import "github.com/lgbarn/othello-player/internal/othello"

// IsLegal reports whether side may place a disc on m: the square must be on
// the board, empty, and bracket at least one line of opposing discs.
func IsLegal(board *othello.Board, m othello.Move, side othello.Side) bool {
	if !m.InBounds() || board.Get(m) != othello.Empty {
		return false
	}
	for _, dir := range othello.Directions {
		if flipsInDirection(board, m, side, dir) > 0 {
			return true
		}
	}
	return false
}

// Mobility returns the number of legal moves available to side.
func Mobility(board *othello.Board, side othello.Side) int {
	n := 0
	for row := 0; row < othello.BoardSize; row++ {
		for col := 0; col < othello.BoardSize; col++ {
			if IsLegal(board, othello.NewMove(row, col), side) {
				n++
			}
		}
	}
	return n
}

// Flips returns the opposing discs that placing on m would turn over,
// grouped by direction in othello.Directions order.
func Flips(board *othello.Board, m othello.Move, side othello.Side) []othello.Move {
	if !m.InBounds() || board.Get(m) != othello.Empty {
		return nil
	}
	var flips []othello.Move
	for _, dir := range othello.Directions {
		n := flipsInDirection(board, m, side, dir)
		sq := m
		for i := 0; i < n; i++ {
			sq = sq.Step(dir)
			flips = append(flips, sq)
		}
	}
	return flips
}

// flipsInDirection counts the opposing discs bracketed from m along dir.
// Zero means the line is not closed by an own disc.
func flipsInDirection(board *othello.Board, m othello.Move, side othello.Side, dir othello.Direction) int {
	own := othello.DiscOf(side)
	theirs := othello.DiscOf(side.Opposite())

	n := 0
	sq := m.Step(dir)
	for sq.InBounds() && board.Get(sq) == theirs {
		n++
		sq = sq.Step(dir)
	}
	if n == 0 || !sq.InBounds() || board.Get(sq) != own {
		return 0
	}
	return n
}
