// Package informed - A* search over the sliding-tile state graph.
//
// The frontier is a min-heap ordered by f = g+h ascending, ties broken by
// smaller h. Instead of a mutable-priority structure, A* uses the lazy
// decrease-key strategy: duplicates are pushed freely, and a popped node
// whose g exceeds the best known g for its state is stale and skipped.
// With an admissible, consistent heuristic and unit step cost the
// returned path is optimal.
package informed

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// AStar runs A* from start toward goal. Returns ErrInvalidStart,
// ErrInvalidGoal, or ErrOptionViolation for bad input, or the context's
// error on cancellation. An exhausted frontier (unsolvable instance) is a
// normal FAILURE outcome carried in the Result.
//
// Complexity over the reachable component (V states, E moves):
//   - Time:   O((V + E) log V) — each relaxation may push one heap entry.
//   - Memory: O(V + E) worst case under lazy decrease-key.
func AStar(start, goal puzzle.State, opts ...Option) (*Result, error) {
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

	pq := &frontier{nodes: make([]*node, 0, 64), byF: true}
	heap.Init(pq)

	// bestG tracks the best known accumulated cost per state; a popped
	// node worse than this entry is stale.
	bestG := map[puzzle.State]int{start: 0}
	parent := make(map[puzzle.State]puzzle.State, 64)

	h0 := o.Heuristic.Evaluate(start, goal, gp)
	heap.Push(pq, &node{state: start, g: 0, h: h0, f: h0})

	for pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			res.Elapsed = time.Since(began)

			return res, o.Ctx.Err()
		default:
		}

		cur := heap.Pop(pq).(*node)
		res.Explored++

		// Goal test on pop.
		if cur.state == goal {
			res.Solved = true
			res.Path = puzzle.ReconstructPath(parent, start, cur.state)

			break
		}

		// Stale entry: a cheaper path to this state was already recorded.
		if g, ok := bestG[cur.state]; ok && cur.g > g {
			continue
		}

		for _, nbr := range cur.state.Neighbors() {
			newG := cur.g + 1 // unit step cost
			if g, ok := bestG[nbr]; ok && newG >= g {
				continue
			}
			// Strict improvement: (re)record and (re)insert.
			bestG[nbr] = newG
			parent[nbr] = cur.state
			nh := o.Heuristic.Evaluate(nbr, goal, gp)
			heap.Push(pq, &node{state: nbr, g: newG, h: nh, f: newG + nh})
		}
	}

	res.Elapsed = time.Since(began)

	return res, nil
}
