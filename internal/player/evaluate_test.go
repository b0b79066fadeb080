package player

import (
	"testing"

	"github.com/lgbarn/othello-player/internal/config"
	"github.com/lgbarn/othello-player/internal/othello"
	"github.com/lgbarn/othello-player/internal/rules"
	"github.com/lgbarn/othello-player/internal/testutil"
)

func TestEvaluate_RoutesByTotalDiscs(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  config.Phase
	}{
		{"ten discs is early", 10, config.Early},
		{"twelve discs is early", 12, config.Early},
		{"thirteen discs is mid", 13, config.Mid},
		{"fifty-four discs is mid", 54, config.Mid},
		{"fifty-five discs is late", 55, config.Late},
		{"sixty discs is late", 60, config.Late},
	}

	eval := NewEvaluator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &script{total: tt.total, scores: map[string]int{"": 42}}

			got := eval.Evaluate(newScriptBoard(s), othello.Black, othello.White)
			testutil.AssertEqual(t, got, 42)
			testutil.AssertEqual(t, s.calls, []config.Phase{tt.want})
		})
	}
}

func TestEvaluate_CustomThresholds(t *testing.T) {
	eval := NewEvaluator(&config.PhaseConfig{EarlyBelow: 20, LateAbove: 40})

	s := &script{total: 15}
	eval.Evaluate(newScriptBoard(s), othello.Black, othello.White)
	s.total = 41
	eval.Evaluate(newScriptBoard(s), othello.Black, othello.White)

	testutil.AssertEqual(t, s.calls, []config.Phase{config.Early, config.Late})
}

func TestEvaluate_OthelloBoardUsesRulesScores(t *testing.T) {
	pos := testutil.MustParseBoard(t, `
		X.......
		........
		...O....
		...XX...
		...XO...
		........
		........
		........`)
	eval := NewEvaluator(nil)

	got := eval.Evaluate(NewOthelloBoard(pos), othello.White, othello.Black)
	testutil.AssertEqual(t, got, rules.EarlyScore(pos, othello.White, othello.Black))
	testutil.AssertEqual(t, eval.Phase(NewOthelloBoard(pos)), config.Early)
}
