package rules

import (
	"testing"

	"github.com/lgbarn/othello-player/internal/errors"
	"github.com/lgbarn/othello-player/internal/othello"
	"github.com/lgbarn/othello-player/internal/testutil"
)

func legalSquares(b *othello.Board, side othello.Side) []othello.Move {
	var moves []othello.Move
	for row := 0; row < othello.BoardSize; row++ {
		for col := 0; col < othello.BoardSize; col++ {
			if m := othello.NewMove(row, col); IsLegal(b, m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func TestIsLegal_InitialPosition(t *testing.T) {
	tests := []struct {
		name string
		side othello.Side
		want string
	}{
		{"black", othello.Black, "d3 c4 f5 e6"},
		{"white", othello.White, "e3 f4 c5 d6"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := othello.NewInitialBoard()
			testutil.AssertEqual(t, legalSquares(b, tt.side), testutil.MustParseMoves(t, tt.want))
			testutil.AssertEqual(t, Mobility(b, tt.side), 4)
		})
	}
}

func TestIsLegal_RejectsOccupiedAndOffBoard(t *testing.T) {
	b := othello.NewInitialBoard()

	testutil.AssertFalse(t, IsLegal(b, othello.MustParseMove("d4"), othello.Black), "occupied square")
	testutil.AssertFalse(t, IsLegal(b, othello.NewMove(-1, 0), othello.Black), "off board")
	testutil.AssertFalse(t, IsLegal(b, othello.MustParseMove("a1"), othello.Black), "no bracket")
}

func TestIsLegal_LineMustBeClosed(t *testing.T) {
	// White line running to the edge with no black disc behind it.
	b := testutil.MustParseBoard(t, `
		.OOOOOOO
		........
		........
		........
		........
		........
		........
		........`)

	testutil.AssertFalse(t, IsLegal(b, othello.MustParseMove("a1"), othello.Black))
	testutil.AssertEqual(t, Mobility(b, othello.Black), 0)
}

func TestApplyMove_FlipsBracketedDiscs(t *testing.T) {
	b := othello.NewInitialBoard()

	err := ApplyMove(b, othello.MustParseMove("d3"), othello.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertBoard(t, b, `
		........
		........
		...X....
		...XX...
		...XO...
		........
		........
		........`)
}

func TestApplyMove_FlipsSeveralDirections(t *testing.T) {
	b := testutil.MustParseBoard(t, `
		X.X.....
		OOO.....
		.OX.....
		X.X.....
		........
		........
		........
		........`)

	// a3 closes a2 (north), b2 (north-east) and b3 (east); c2 stays white.
	testutil.AssertNoError(t, ApplyMove(b, othello.MustParseMove("a3"), othello.Black))
	testutil.AssertBoard(t, b, `
		X.X.....
		XXO.....
		XXX.....
		X.X.....
		........
		........
		........
		........`)
}

func TestApplyMove_IllegalLeavesBoardUnchanged(t *testing.T) {
	b := othello.NewInitialBoard()
	before := *b

	err := ApplyMove(b, othello.MustParseMove("a1"), othello.Black)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertTrue(t, *b == before, "board changed after illegal move")
}

func TestFlips(t *testing.T) {
	b := othello.NewInitialBoard()

	testutil.AssertEqual(t, Flips(b, othello.MustParseMove("d3"), othello.Black),
		[]othello.Move{othello.MustParseMove("d4")})
	testutil.AssertEqual(t, len(Flips(b, othello.MustParseMove("a1"), othello.Black)), 0)
}
