package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// TestHeuristics_AtGoal verifies both estimates vanish on the goal.
func TestHeuristics_AtGoal(t *testing.T) {
	gp := puzzle.PositionsOf(goal)
	assert.Zero(t, puzzle.H1(goal, goal))
	assert.Zero(t, puzzle.H2(goal, gp))
}

// TestHeuristics_Scenario pins the reference instance
// 1 2 3 / B 4 6 / 7 5 8: tiles 4, 5, and 8 sit on wrong cells (6 is in
// place), each one step from home.
func TestHeuristics_Scenario(t *testing.T) {
	start := puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}
	gp := puzzle.PositionsOf(goal)

	assert.Equal(t, 3, puzzle.H1(start, goal), "misplaced: 4, 5, 8")
	assert.Equal(t, 3, puzzle.H2(start, gp), "each misplaced tile one cell away")
}

// TestH2_ZeroOnlyAtGoal walks a bounded neighborhood of the goal and
// confirms h2 vanishes exactly at the goal — the property that lets
// annealing use h2(current)==0 as its goal test.
func TestH2_ZeroOnlyAtGoal(t *testing.T) {
	gp := puzzle.PositionsOf(goal)

	// breadth-first enumeration up to four moves from the goal
	seen := map[puzzle.State]bool{goal: true}
	layer := []puzzle.State{goal}
	for depth := 0; depth < 4; depth++ {
		var next []puzzle.State
		for _, s := range layer {
			for _, nbr := range s.Neighbors() {
				if !seen[nbr] {
					seen[nbr] = true
					next = append(next, nbr)
				}
			}
		}
		layer = next
	}

	for s := range seen {
		if s == goal {
			assert.Zero(t, puzzle.H2(s, gp))

			continue
		}
		assert.Positive(t, puzzle.H2(s, gp), "h2 must be nonzero off-goal: %v", s)
	}
}

// TestHeuristic_EvaluateAndString covers the enum plumbing shared by the
// informed and iterative-deepening solvers.
func TestHeuristic_EvaluateAndString(t *testing.T) {
	start := puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}
	gp := puzzle.PositionsOf(goal)

	require.True(t, puzzle.MisplacedTiles.Valid())
	require.True(t, puzzle.ManhattanDistance.Valid())
	assert.False(t, puzzle.Heuristic(7).Valid())

	assert.Equal(t, puzzle.H1(start, goal), puzzle.MisplacedTiles.Evaluate(start, goal, gp))
	assert.Equal(t, puzzle.H2(start, gp), puzzle.ManhattanDistance.Evaluate(start, goal, gp))

	assert.Equal(t, "misplaced tiles", puzzle.MisplacedTiles.String())
	assert.Equal(t, "manhattan distance", puzzle.ManhattanDistance.String())
	assert.Equal(t, "?", puzzle.Heuristic(7).String())
}

// TestHeuristics_Consistency samples one-move transitions and checks the
// triangle property |h(s) - h(s')| ≤ 1 that A*'s stale-skip relies on.
func TestHeuristics_Consistency(t *testing.T) {
	gp := puzzle.PositionsOf(goal)
	s := puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}

	frontier := []puzzle.State{s}
	visited := map[puzzle.State]bool{s: true}
	for depth := 0; depth < 5; depth++ {
		var next []puzzle.State
		for _, cur := range frontier {
			h1c, h2c := puzzle.H1(cur, goal), puzzle.H2(cur, gp)
			for _, nbr := range cur.Neighbors() {
				dh1 := puzzle.H1(nbr, goal) - h1c
				dh2 := puzzle.H2(nbr, gp) - h2c
				assert.LessOrEqual(t, abs(dh1), 1, "h1 step change bounded")
				assert.Equal(t, 1, abs(dh2), "h2 changes by exactly one per move")
				if !visited[nbr] {
					visited[nbr] = true
					next = append(next, nbr)
				}
			}
		}
		frontier = next
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
