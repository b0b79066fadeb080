package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/othello-player/internal/othello"
)

// MustParseBoard parses a board diagram and calls t.Fatal if it is malformed.
func MustParseBoard(t testing.TB, diagram string) *othello.Board {
	t.Helper()
	b, err := othello.ParseBoard(diagram)
	if err != nil {
		t.Fatalf("failed to parse board diagram: %v\n%s", err, diagram)
	}
	return b
}

// MustParseMoves parses a whitespace-separated list of moves ("d3 c4").
func MustParseMoves(t testing.TB, text string) []othello.Move {
	t.Helper()
	fields := strings.Fields(text)
	moves := make([]othello.Move, 0, len(fields))
	for _, f := range fields {
		m, err := othello.ParseMove(f)
		if err != nil {
			t.Fatalf("failed to parse move list %q: %v", text, err)
		}
		moves = append(moves, m)
	}
	return moves
}

// AssertBoard fails if got differs from the diagram want, printing both.
func AssertBoard(t *testing.T, got *othello.Board, want string, msgAndArgs ...interface{}) {
	t.Helper()
	wantBoard := MustParseBoard(t, want)
	if *got != *wantBoard {
		report(t, "board mismatch:\nwant:\n"+wantBoard.String()+"\ngot:\n"+got.String(), msgAndArgs...)
	}
}
