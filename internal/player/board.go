// Package player implements the move-selection core of an Othello player:
// legal-move enumeration, phase-based evaluation, greedy and maximin search,
// and the per-turn decision loop over an authoritative board.
package player

import (
	"github.com/lgbarn/othello-player/internal/othello"
	"github.com/lgbarn/othello-player/internal/rules"
)

// Board is the game-state collaborator the core consumes. The core never
// looks inside a Board; it only asks these questions and mutates clones.
type Board interface {
	// IsLegal reports whether side may play m on this board.
	IsLegal(m othello.Move, side othello.Side) bool
	// Apply plays m for side in place. It fails without mutating when m is illegal.
	Apply(m othello.Move, side othello.Side) error
	// Clone returns an independent copy.
	Clone() Board
	// PieceCount returns the number of discs side has on the board.
	PieceCount(side othello.Side) int

	// EarlyScore, MidScore and LateScore rate the position for perspective
	// in each game phase. Higher is better for perspective, and the same
	// board always yields the same score.
	EarlyScore(perspective, opponent othello.Side) int
	MidScore(perspective, opponent othello.Side) int
	LateScore(perspective, opponent othello.Side) int
}

// OthelloBoard adapts an othello.Board and the rules package to Board.
type OthelloBoard struct {
	b *othello.Board
}

// NewOthelloBoard wraps a copy of b.
func NewOthelloBoard(b *othello.Board) *OthelloBoard {
	return &OthelloBoard{b: b.Copy()}
}

// NewInitialBoard returns a Board at the standard starting position.
func NewInitialBoard() *OthelloBoard {
	return &OthelloBoard{b: othello.NewInitialBoard()}
}

// IsLegal reports whether side may play m under Othello rules.
func (o *OthelloBoard) IsLegal(m othello.Move, side othello.Side) bool {
	return rules.IsLegal(o.b, m, side)
}

// Apply places side's disc on m and flips every bracketed line.
// An illegal move returns an error wrapping ErrIllegalMove.
func (o *OthelloBoard) Apply(m othello.Move, side othello.Side) error {
	return rules.ApplyMove(o.b, m, side)
}

// Clone returns an OthelloBoard over a copy of the position.
func (o *OthelloBoard) Clone() Board {
	return &OthelloBoard{b: o.b.Copy()}
}

// PieceCount returns the number of side's discs on the board.
func (o *OthelloBoard) PieceCount(side othello.Side) int {
	return o.b.Count(side)
}

// EarlyScore returns rules.EarlyScore for the position.
func (o *OthelloBoard) EarlyScore(perspective, opponent othello.Side) int {
	return rules.EarlyScore(o.b, perspective, opponent)
}

// MidScore returns rules.MidScore for the position.
func (o *OthelloBoard) MidScore(perspective, opponent othello.Side) int {
	return rules.MidScore(o.b, perspective, opponent)
}

// LateScore returns rules.LateScore for the position.
func (o *OthelloBoard) LateScore(perspective, opponent othello.Side) int {
	return rules.LateScore(o.b, perspective, opponent)
}

// Position returns a copy of the underlying board.
func (o *OthelloBoard) Position() *othello.Board {
	return o.b.Copy()
}

// String returns the board diagram.
func (o *OthelloBoard) String() string {
	return o.b.String()
}
