// Package idastar implements iterative-deepening A* over the sliding-tile
// state graph.
//
// IDA* replaces A*'s frontier and explored set with a recursive
// depth-first probe bounded by a threshold on f = g+h. Cycle avoidance is
// path-local: only the current root-to-node path is tracked, giving
// O(depth) memory — the algorithm's defining advantage over A*. The probe
// mutates a shared path slice and on-path set with strict push/undo
// discipline: every return path restores them, except the FOUND return,
// which deliberately leaves the completed solution in place.
package idastar

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// found signals a successful probe; any non-negative return is the
// minimum f-value that exceeded the threshold (the next threshold
// candidate), and math.MaxInt means no rejection occurred below any bound
// (state space exhausted).
const found = -1

// prober owns the per-run accumulators of the threshold search.
type prober struct {
	goal     puzzle.State
	gp       puzzle.GoalPositions
	heur     puzzle.Heuristic
	path     []puzzle.State        // current root-to-node path
	onPath   map[puzzle.State]bool // membership mirror of path
	explored int
}

// Search runs IDA* from start toward goal, escalating the f-threshold
// from h(start) until the goal is found or the space is exhausted.
// Returns ErrInvalidStart, ErrInvalidGoal, or ErrOptionViolation for bad
// input. Exhaustion without a goal is a normal FAILURE outcome.
//
// Complexity:
//   - Time:   O(b^d) worst case per iteration (b = branching, d = depth);
//     earlier iterations are re-expanded, a deliberate time-for-memory trade.
//   - Memory: O(d) — the current path and its membership set only.
func Search(start, goal puzzle.State, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStart, err)
	}
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
	}

	began := time.Now()
	res := &Result{Heuristic: o.Heuristic}
	p := &prober{
		goal:   goal,
		gp:     puzzle.PositionsOf(goal),
		heur:   o.Heuristic,
		path:   []puzzle.State{start},
		onPath: map[puzzle.State]bool{start: true},
	}

	threshold := o.Heuristic.Evaluate(start, goal, p.gp)
	for {
		res.Iterations++
		outcome := p.probe(0, threshold)

		if outcome == found {
			res.Solved = true
			res.Path = append([]puzzle.State(nil), p.path...)

			break
		}
		if outcome == math.MaxInt {
			// No child anywhere exceeded the threshold with a finite f:
			// the reachable space is exhausted, the goal is unreachable.
			break
		}
		// Monotone escalation to the smallest rejected f.
		threshold = outcome
	}

	res.Explored = p.explored
	res.Elapsed = time.Since(began)

	return res, nil
}

// probe performs the threshold-bounded depth-first descent from the last
// state on p.path, with accumulated cost g. It returns found, or the
// minimum f among rejected descendants (math.MaxInt when none).
func (p *prober) probe(g, threshold int) int {
	current := p.path[len(p.path)-1]
	f := g + p.heur.Evaluate(current, p.goal, p.gp)

	// Rejected nodes are next-threshold candidates, not explored nodes.
	if f > threshold {
		return f
	}

	p.explored++
	if current == p.goal {
		return found
	}

	next := math.MaxInt
	for _, nbr := range current.Neighbors() {
		// Path-local cycle avoidance only; no global explored set.
		if p.onPath[nbr] {
			continue
		}

		p.path = append(p.path, nbr)
		p.onPath[nbr] = true

		outcome := p.probe(g+1, threshold)
		if outcome == found {
			// Keep the accumulators: p.path is the solution.
			return found
		}
		if outcome < next {
			next = outcome
		}

		// Undo before trying the next sibling.
		p.path = p.path[:len(p.path)-1]
		delete(p.onPath, nbr)
	}

	return next
}
