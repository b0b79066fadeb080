package player

import "github.com/lgbarn/othello-player/internal/othello"

// LegalMoves returns every square side may play on b, in row-major order.
// An empty result means side must pass. b is not modified.
func LegalMoves(b Board, side othello.Side) []othello.Move {
	var moves []othello.Move
	for row := 0; row < othello.BoardSize; row++ {
		for col := 0; col < othello.BoardSize; col++ {
			if m := othello.NewMove(row, col); b.IsLegal(m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
