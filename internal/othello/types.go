// Package othello provides core Othello types: sides, discs, moves and the board.
package othello

import (
	"fmt"

	"github.com/lgbarn/othello-player/internal/errors"
)

// Side represents one of the two players.
type Side int

const (
	Black Side = iota
	White
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Disc represents the content of a square.
type Disc int

const (
	Empty Disc = iota
	BlackDisc
	WhiteDisc
)

// String returns the diagram letter of a disc.
func (d Disc) String() string {
	return string(d.Letter())
}

// Letter returns the single character used in board diagrams.
func (d Disc) Letter() byte {
	switch d {
	case BlackDisc:
		return 'X'
	case WhiteDisc:
		return 'O'
	default:
		return '.'
	}
}

// DiscOf returns the disc placed by the given side.
func DiscOf(side Side) Disc {
	if side == White {
		return WhiteDisc
	}
	return BlackDisc
}

// Owner reports which side a disc belongs to. ok is false for Empty.
func (d Disc) Owner() (side Side, ok bool) {
	switch d {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return Black, false
	}
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase = 'a'
	RowBase = '1'
)

// Direction is a unit step on the board.
type Direction struct {
	DRow, DCol int
}

// Directions lists the eight compass directions a line of discs can run in.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Move is the square a disc is placed on.
type Move struct {
	Row int
	Col int
}

// NewMove creates a move at the given row and column.
func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

// InBounds reports whether the move names a square on the board.
func (m Move) InBounds() bool {
	return InBounds(m.Row, m.Col)
}

// Step returns the square one step away in direction d.
func (m Move) Step(d Direction) Move {
	return Move{Row: m.Row + d.DRow, Col: m.Col + d.DCol}
}

// String returns the move in coordinate notation, e.g. "d3".
func (m Move) String() string {
	if !m.InBounds() {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return string([]byte{byte(ColBase + m.Col), byte(RowBase + m.Row)})
}

// ParseMove parses coordinate notation ("d3", case-insensitive column).
func ParseMove(text string) (Move, error) {
	if len(text) != 2 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	col := text[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	m := Move{Row: int(text[1]) - RowBase, Col: int(col) - ColBase}
	if !m.InBounds() {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	return m, nil
}

// MustParseMove is like ParseMove but panics on malformed input.
// Intended for fixed literals.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// InBounds reports whether row and col are both in [0, BoardSize).
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
