// Package informed - greedy best-first search over the sliding-tile
// state graph.
//
// The frontier is ordered solely by the heuristic value h. Duplicate
// insertions are allowed and resolved by first-pop-wins: the explored
// check happens at pop, and the parent of a state is recorded only at its
// first discovery. Greedy is fast but carries no optimality guarantee.
package informed

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Greedy runs greedy best-first search from start toward goal. Returns
// ErrInvalidStart, ErrInvalidGoal, or ErrOptionViolation for bad input,
// or the context's error on cancellation. An exhausted frontier is a
// normal FAILURE outcome carried in the Result.
//
// Complexity over the reachable component (V states, E moves):
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) worst case for duplicate frontier entries.
func Greedy(start, goal puzzle.State, opts ...Option) (*Result, error) {
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
	gp := puzzle.PositionsOf(goal)
	res := &Result{Heuristic: o.Heuristic}

	pq := &frontier{nodes: make([]*node, 0, 64), byF: false}
	heap.Init(pq)

	seen := make(map[puzzle.State]bool, 64)
	parent := make(map[puzzle.State]puzzle.State, 64)

	heap.Push(pq, &node{state: start, h: o.Heuristic.Evaluate(start, goal, gp)})

	for pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			res.Elapsed = time.Since(began)

			return res, o.Ctx.Err()
		default:
		}

		cur := heap.Pop(pq).(*node)

		// First-pop-wins: later duplicates of an expanded state are dropped.
		if seen[cur.state] {
			continue
		}
		seen[cur.state] = true
		res.Explored++

		if cur.state == goal {
			res.Solved = true
			res.Path = puzzle.ReconstructPath(parent, start, cur.state)

			break
		}

		for _, nbr := range cur.state.Neighbors() {
			if seen[nbr] {
				continue
			}
			// Parent is recorded exactly once, at first discovery.
			if _, discovered := parent[nbr]; !discovered && nbr != start {
				parent[nbr] = cur.state
			}
			heap.Push(pq, &node{state: nbr, h: o.Heuristic.Evaluate(nbr, goal, gp)})
		}
	}

	res.Elapsed = time.Since(began)

	return res, nil
}
