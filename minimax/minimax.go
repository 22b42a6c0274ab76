// Package minimax implements adversarial search over the sliding-tile
// state graph: the single-agent puzzle recast as an artificial two-agent
// game. MAX picks the successor maximizing utility = −h2 (closing in on
// the goal), MIN picks the successor minimizing it (dragging away).
//
// Cycle avoidance is per root-to-leaf path: a child is marked visited
// before the recursive call and unmarked after it returns, on every exit
// including pruning cutoffs. A node whose neighbors are all on the
// current path falls back to its own utility rather than failing.
package minimax

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// game owns the per-run accumulators shared by both algorithms.
type game struct {
	goal      puzzle.State
	gp        puzzle.GoalPositions
	visited   map[puzzle.State]bool // states on the current recursion path
	evaluated int
}

// utility scores a state for MAX: the negated Manhattan distance, so 0 is
// the goal and more negative is farther away.
func (g *game) utility(s puzzle.State) int {
	return -puzzle.H2(s, g.gp)
}

// minimax backs up the plain minimax value of s with the given remaining
// depth; isMax selects whose turn it is.
func (g *game) minimax(s puzzle.State, depth int, isMax bool) int {
	g.evaluated++

	if depth == 0 || s == g.goal {
		return g.utility(s)
	}

	if isMax {
		best := math.MinInt
		for _, next := range s.Neighbors() {
			if g.visited[next] {
				continue
			}
			g.visited[next] = true
			if v := g.minimax(next, depth-1, false); v > best {
				best = v
			}
			delete(g.visited, next)
		}
		if best == math.MinInt {
			// Every move revisits the current path; score the node itself.
			return g.utility(s)
		}

		return best
	}

	worst := math.MaxInt
	for _, next := range s.Neighbors() {
		if g.visited[next] {
			continue
		}
		g.visited[next] = true
		if v := g.minimax(next, depth-1, true); v < worst {
			worst = v
		}
		delete(g.visited, next)
	}
	if worst == math.MaxInt {
		return g.utility(s)
	}

	return worst
}

// Minimax selects MAX's best move from start by plain minimax to the
// configured ply depth. Returns ErrInvalidStart, ErrInvalidGoal, or
// ErrOptionViolation for bad input.
//
// Complexity: O(b^d) time (b = branching factor ≤ 4, d = ply depth),
// O(d) memory for the recursion path and its visited mirror.
func Minimax(start, goal puzzle.State, opts ...Option) (*Result, error) {
	o, err := buildOptions(start, goal, opts)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	g := &game{
		goal:    goal,
		gp:      puzzle.PositionsOf(goal),
		visited: map[puzzle.State]bool{start: true},
	}

	res := &Result{BestAction: puzzle.None, Value: math.MinInt}
	for _, next := range start.Neighbors() {
		g.visited[next] = true
		v := g.minimax(next, o.Depth-1, false)
		delete(g.visited, next)

		if v > res.Value {
			res.Value = v
			res.BestMove = next
			res.BestAction = puzzle.Action(start, next)
		}
	}

	res.Evaluated = g.evaluated
	res.Elapsed = time.Since(began)

	return res, nil
}

// buildOptions applies functional options and validates both states.
func buildOptions(start, goal puzzle.State, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if err := start.Validate(); err != nil {
		return o, fmt.Errorf("%w: %v", ErrInvalidStart, err)
	}
	if err := goal.Validate(); err != nil {
		return o, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
	}

	return o, nil
}
