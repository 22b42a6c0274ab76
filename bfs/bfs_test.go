package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/puzzle"
)

var (
	goal   = puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 0}
	start3 = puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8} // three moves from goal
)

// reachableStates is the size of one parity class of the 3×3 puzzle: 9!/2.
const reachableStates = 181440

// TestSearch_Errors verifies that malformed states are rejected.
func TestSearch_Errors(t *testing.T) {
	bad := puzzle.State{0, 0, 1, 2, 3, 4, 5, 6, 7}
	if _, err := bfs.Search(bad, goal); !errors.Is(err, bfs.ErrInvalidStart) {
		t.Errorf("bad start: want ErrInvalidStart, got %v", err)
	}
	if _, err := bfs.Search(goal, bad); !errors.Is(err, bfs.ErrInvalidGoal) {
		t.Errorf("bad goal: want ErrInvalidGoal, got %v", err)
	}
}

// TestSearch_StartIsGoal covers the degenerate solved-on-arrival case.
func TestSearch_StartIsGoal(t *testing.T) {
	res, err := bfs.Search(goal, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved {
		t.Fatal("start == goal must be solved")
	}
	if res.Explored != 1 {
		t.Errorf("Explored = %d; want 1 (only the initial goal test)", res.Explored)
	}
	if res.Moves() != 0 {
		t.Errorf("Moves = %d; want 0", res.Moves())
	}
}

// TestSearch_ThreeMoves pins the reference instance: the unique shortest
// solution is Right, Down, Right.
func TestSearch_ThreeMoves(t *testing.T) {
	res, err := bfs.Search(start3, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved {
		t.Fatal("instance is solvable")
	}
	if res.Moves() != 3 {
		t.Errorf("Moves = %d; want 3", res.Moves())
	}
	want := []puzzle.Direction{puzzle.Right, puzzle.Down, puzzle.Right}
	if got := res.Actions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Actions = %v; want %v", got, want)
	}
	if res.Path[0] != start3 || res.Path[len(res.Path)-1] != goal {
		t.Error("path must run start → goal")
	}
}

// TestSearch_Unsolvable checks that an odd-parity instance exhausts its
// full reachable component and reports failure, not an error.
func TestSearch_Unsolvable(t *testing.T) {
	swapped := puzzle.State{2, 1, 3, 4, 5, 6, 7, 8, 0}
	if puzzle.Solvable(swapped, goal) {
		t.Fatal("fixture must be unsolvable")
	}

	res, err := bfs.Search(swapped, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Solved {
		t.Fatal("unsolvable instance reported solved")
	}
	if res.Explored != reachableStates {
		t.Errorf("Explored = %d; want the whole parity class %d", res.Explored, reachableStates)
	}
	if res.Path != nil {
		t.Errorf("failure must not carry a path, got %d states", len(res.Path))
	}
}

// TestSearch_Cancelled verifies context cancellation aborts the run.
func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Search(start3, goal, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
