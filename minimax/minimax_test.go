package minimax_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/npuzzle/minimax"
	"github.com/katalvlaran/npuzzle/puzzle"
)

var (
	goal   = puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 0}
	start3 = puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}
)

func scramble(n int, seed int64) puzzle.State {
	rng := rand.New(rand.NewSource(seed))
	s := goal
	for i := 0; i < n; i++ {
		nbrs := s.Neighbors()
		s = nbrs[rng.Intn(len(nbrs))]
	}

	return s
}

func TestErrors(t *testing.T) {
	bad := puzzle.State{1, 1, 2, 3, 4, 5, 6, 7, 8}

	if _, err := minimax.Minimax(bad, goal); !errors.Is(err, minimax.ErrInvalidStart) {
		t.Fatalf("Minimax(bad start): got %v, want ErrInvalidStart", err)
	}
	if _, err := minimax.AlphaBeta(goal, bad); !errors.Is(err, minimax.ErrInvalidGoal) {
		t.Fatalf("AlphaBeta(bad goal): got %v, want ErrInvalidGoal", err)
	}
	if _, err := minimax.Minimax(start3, goal, minimax.WithDepth(0)); !errors.Is(err, minimax.ErrOptionViolation) {
		t.Fatalf("WithDepth(0): got %v, want ErrOptionViolation", err)
	}
	if _, err := minimax.Compare(start3, goal, minimax.WithDepth(-3)); !errors.Is(err, minimax.ErrOptionViolation) {
		t.Fatalf("Compare WithDepth(-3): got %v, want ErrOptionViolation", err)
	}
}

// TestDepthOne pins the hand-computable one-ply case. The start has
// three legal moves; moving the blank Right lowers the Manhattan sum to
// 2 while Up and Down raise it to 4, so Right wins with utility -2 and
// exactly three evaluations for both algorithms.
func TestDepthOne(t *testing.T) {
	for _, tc := range []struct {
		name string
		run  func() (*minimax.Result, error)
	}{
		{"minimax", func() (*minimax.Result, error) {
			return minimax.Minimax(start3, goal, minimax.WithDepth(1))
		}},
		{"alphabeta", func() (*minimax.Result, error) {
			return minimax.AlphaBeta(start3, goal, minimax.WithDepth(1))
		}},
	} {
		res, err := tc.run()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if res.BestAction != puzzle.Right {
			t.Errorf("%s: best action = %v, want Right", tc.name, res.BestAction)
		}
		if res.Value != -2 {
			t.Errorf("%s: value = %d, want -2", tc.name, res.Value)
		}
		if res.Evaluated != 3 {
			t.Errorf("%s: evaluated = %d, want 3", tc.name, res.Evaluated)
		}
		want := puzzle.State{1, 2, 3, 4, 0, 6, 7, 5, 8}
		if res.BestMove != want {
			t.Errorf("%s: best move = %v, want %v", tc.name, res.BestMove, want)
		}
	}
}

// TestPruningIsLossless runs both algorithms over several depths and
// instances; pruning may change only the node count, never the decision.
func TestPruningIsLossless(t *testing.T) {
	starts := []puzzle.State{start3, scramble(18, 11)}
	for _, start := range starts {
		for _, depth := range []int{2, 3, 4, minimax.DefaultDepth} {
			mm, err := minimax.Minimax(start, goal, minimax.WithDepth(depth))
			if err != nil {
				t.Fatalf("Minimax depth %d: %v", depth, err)
			}
			ab, err := minimax.AlphaBeta(start, goal, minimax.WithDepth(depth))
			if err != nil {
				t.Fatalf("AlphaBeta depth %d: %v", depth, err)
			}

			if mm.BestMove != ab.BestMove {
				t.Errorf("depth %d: moves differ: minimax %v vs alpha-beta %v",
					depth, mm.BestAction, ab.BestAction)
			}
			if mm.Value != ab.Value {
				t.Errorf("depth %d: values differ: %d vs %d", depth, mm.Value, ab.Value)
			}
			if ab.Evaluated > mm.Evaluated {
				t.Errorf("depth %d: alpha-beta evaluated %d > minimax %d",
					depth, ab.Evaluated, mm.Evaluated)
			}
		}
	}
}

// TestBestActionLabelsBestMove checks that the reported action really
// produces the reported successor.
func TestBestActionLabelsBestMove(t *testing.T) {
	res, err := minimax.AlphaBeta(start3, goal)
	if err != nil {
		t.Fatal(err)
	}
	if got := puzzle.Action(start3, res.BestMove); got != res.BestAction {
		t.Errorf("action label %v does not produce best move (derived %v)",
			res.BestAction, got)
	}
	if res.BestAction == puzzle.None {
		t.Error("best move is not a legal successor of the start")
	}
}

func TestCompare(t *testing.T) {
	cmp, err := minimax.Compare(start3, goal)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.SameMove {
		t.Errorf("pruning changed the decision: minimax %v vs alpha-beta %v",
			cmp.Minimax.BestAction, cmp.AlphaBeta.BestAction)
	}
	if cmp.Savings < 0 || cmp.Savings >= 1 {
		t.Errorf("savings = %g, want in [0, 1)", cmp.Savings)
	}
	if cmp.Minimax.Value != cmp.AlphaBeta.Value {
		t.Errorf("values differ: %d vs %d", cmp.Minimax.Value, cmp.AlphaBeta.Value)
	}
}
