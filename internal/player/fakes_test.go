package player

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/lgbarn/othello-player/internal/config"
	"github.com/lgbarn/othello-player/internal/errors"
	"github.com/lgbarn/othello-player/internal/othello"
	"github.com/lgbarn/othello-player/internal/rules"
)

// script describes a game tree for scriptBoard. Nodes are keyed by the
// space-separated moves played from the root ("" is the root).
type script struct {
	legal  map[string][]othello.Move // moves available to whoever is to move at the node
	scores map[string]int            // score returned by every phase function at the node
	total  int                       // disc count reported at every node
	failOn map[string]error          // Apply of this move fails with the error
	calls  []config.Phase            // phase functions invoked, in order
}

// scriptBoard is a Board whose legality and scores come from a script.
// Clones share the script, so calls are recorded across the whole search.
type scriptBoard struct {
	path []othello.Move
	s    *script
}

func newScriptBoard(s *script) *scriptBoard {
	return &scriptBoard{s: s}
}

func (b *scriptBoard) key() string {
	parts := make([]string, len(b.path))
	for i, m := range b.path {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func (b *scriptBoard) IsLegal(m othello.Move, _ othello.Side) bool {
	for _, l := range b.s.legal[b.key()] {
		if l == m {
			return true
		}
	}
	return false
}

func (b *scriptBoard) Apply(m othello.Move, side othello.Side) error {
	if err, ok := b.s.failOn[m.String()]; ok {
		return err
	}
	if !b.IsLegal(m, side) {
		return fmt.Errorf("%s at %s: %w", side, m, errors.ErrIllegalMove)
	}
	b.path = append(b.path, m)
	return nil
}

func (b *scriptBoard) Clone() Board {
	path := make([]othello.Move, len(b.path))
	copy(path, b.path)
	return &scriptBoard{path: path, s: b.s}
}

func (b *scriptBoard) PieceCount(side othello.Side) int {
	if side == othello.Black {
		return b.s.total / 2
	}
	return b.s.total - b.s.total/2
}

func (b *scriptBoard) score(p config.Phase) int {
	b.s.calls = append(b.s.calls, p)
	return b.s.scores[b.key()]
}

func (b *scriptBoard) EarlyScore(_, _ othello.Side) int { return b.score(config.Early) }
func (b *scriptBoard) MidScore(_, _ othello.Side) int { return b.score(config.Mid) }
func (b *scriptBoard) LateScore(_, _ othello.Side) int { return b.score(config.Late) }

func mv(text string) othello.Move {
	return othello.MustParseMove(text)
}

func mvs(text string) []othello.Move {
	var moves []othello.Move
	for _, f := range strings.Fields(text) {
		moves = append(moves, mv(f))
	}
	return moves
}

// worstCaseScript: a1 has the better immediate score and the better best
// reply, but b1 has the better worst reply.
func worstCaseScript() *script {
	return &script{
		total: 30,
		legal: map[string][]othello.Move{
			"":   mvs("a1 b1"),
			"a1": mvs("a2 b2"),
			"b1": mvs("a2 b2"),
		},
		scores: map[string]int{
			"a1":    20,
			"a1 a2": 10,
			"a1 b2": -5,
			"b1":    5,
			"b1 a2": 0,
			"b1 b2": 1,
		},
	}
}

// positionOf extracts the othello position behind a Board built by this package.
func positionOf(t testing.TB, b Board) *othello.Board {
	t.Helper()
	ob, ok := b.(*OthelloBoard)
	if !ok {
		t.Fatalf("board is %T, want *OthelloBoard", b)
	}
	return ob.Position()
}

// sample is a position together with the side to move.
type sample struct {
	board *othello.Board
	side  othello.Side
}

// randomPositions plays seeded random games from the initial position and
// returns the position (and side to move) after every ply.
func randomPositions(seed int64, games int) []sample {
	rng := rand.New(rand.NewSource(seed))
	var out []sample
	for g := 0; g < games; g++ {
		b := othello.NewInitialBoard()
		side := othello.Black
		passes := 0
		for passes < 2 {
			moves := LegalMoves(NewOthelloBoard(b), side)
			if len(moves) == 0 {
				passes++
				side = side.Opposite()
				continue
			}
			passes = 0
			out = append(out, sample{board: b.Copy(), side: side})
			if err := rules.ApplyMove(b, moves[rng.Intn(len(moves))], side); err != nil {
				panic(err)
			}
			side = side.Opposite()
		}
	}
	return out
}
