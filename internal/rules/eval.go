package rules

import "github.com/lgbarn/othello-player/internal/othello"

// SquareWeights is the positional value of holding each square, [row][col].
// Corners dominate; the squares diagonally next to a corner are worst.
var SquareWeights = [othello.BoardSize][othello.BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// Scoring coefficients for the three phases.
const (
	EarlyMobilityWeight = 10
	EarlyCornerWeight   = 25
	EarlyXSquarePenalty = 8

	MidMobilityWeight = 5

	LateDiscWeight   = 10
	LateCornerWeight = 20
)

// corner squares and the X-square diagonally inside each.
var corners = [4]struct{ corner, xSquare othello.Move }{
	{othello.NewMove(0, 0), othello.NewMove(1, 1)},
	{othello.NewMove(0, 7), othello.NewMove(1, 6)},
	{othello.NewMove(7, 0), othello.NewMove(6, 1)},
	{othello.NewMove(7, 7), othello.NewMove(6, 6)},
}

// EarlyScore favours mobility and corners while few discs are down.
func EarlyScore(board *othello.Board, perspective, opponent othello.Side) int {
	mobility := Mobility(board, perspective) - Mobility(board, opponent)
	cornerDiff := cornerCount(board, perspective) - cornerCount(board, opponent)
	xDiff := exposedXSquares(board, perspective) - exposedXSquares(board, opponent)
	return EarlyMobilityWeight*mobility + EarlyCornerWeight*cornerDiff - EarlyXSquarePenalty*xDiff
}

// MidScore sums SquareWeights over each side's discs and adds a mobility term.
func MidScore(board *othello.Board, perspective, opponent othello.Side) int {
	own := othello.DiscOf(perspective)
	theirs := othello.DiscOf(opponent)

	positional := 0
	for row := 0; row < othello.BoardSize; row++ {
		for col := 0; col < othello.BoardSize; col++ {
			switch board.Squares[row][col] {
			case own:
				positional += SquareWeights[row][col]
			case theirs:
				positional -= SquareWeights[row][col]
			}
		}
	}
	mobility := Mobility(board, perspective) - Mobility(board, opponent)
	return positional + MidMobilityWeight*mobility
}

// LateScore counts discs, since the final count decides the game.
func LateScore(board *othello.Board, perspective, opponent othello.Side) int {
	discs := board.Count(perspective) - board.Count(opponent)
	cornerDiff := cornerCount(board, perspective) - cornerCount(board, opponent)
	return LateDiscWeight*discs + LateCornerWeight*cornerDiff
}

func cornerCount(board *othello.Board, side othello.Side) int {
	disc := othello.DiscOf(side)
	n := 0
	for _, c := range corners {
		if board.Get(c.corner) == disc {
			n++
		}
	}
	return n
}

// exposedXSquares counts side's discs on X-squares whose corner is still empty.
func exposedXSquares(board *othello.Board, side othello.Side) int {
	disc := othello.DiscOf(side)
	n := 0
	for _, c := range corners {
		if board.Get(c.corner) == othello.Empty && board.Get(c.xSquare) == disc {
			n++
		}
	}
	return n
}
