// Package bfs implements breadth-first search over the sliding-tile state
// graph, returning a shortest solution path under unit step cost.
//
// A state is marked explored and parent-recorded at enqueue time, so each
// state enters the FIFO frontier exactly once; the goal test happens at
// dequeue. Exhausting the frontier without reaching the goal (an
// unsolvable instance) is a normal FAILURE outcome, not an error.
package bfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	goal    puzzle.State
	opts    Options
	queue   []puzzle.State
	visited map[puzzle.State]bool
	parent  map[puzzle.State]puzzle.State
	res     *Result
}

// Search runs breadth-first search from start toward goal, applying any
// number of functional Options. Returns ErrInvalidStart or ErrInvalidGoal
// for malformed states, or the context's error on cancellation.
//
// Complexity over the reachable component (V states, E moves):
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier, visited set, and parent relation.
func Search(start, goal puzzle.State, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStart, err)
	}
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
	}

	began := time.Now()
	w := &walker{
		goal:    goal,
		opts:    o,
		queue:   make([]puzzle.State, 0, 64),
		visited: make(map[puzzle.State]bool, 64),
		parent:  make(map[puzzle.State]puzzle.State, 64),
		res:     &Result{},
	}

	// Seed the frontier; the start has no parent.
	w.visited[start] = true
	w.queue = append(w.queue, start)

	err := w.loop(start)
	w.res.Elapsed = time.Since(began)

	return w.res, err
}

// loop processes the queue until the goal is dequeued, the frontier
// empties, or the context is cancelled.
func (w *walker) loop(start puzzle.State) error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		current := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Explored++

		// Goal test on dequeue.
		if current == w.goal {
			w.res.Solved = true
			w.res.Path = puzzle.ReconstructPath(w.parent, start, current)

			return nil
		}

		for _, nbr := range current.Neighbors() {
			if w.visited[nbr] {
				continue
			}
			// Discovery: mark and record the parent exactly once.
			w.visited[nbr] = true
			w.parent[nbr] = current
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
