// Package dfs implements depth-limited depth-first search over the
// sliding-tile state graph.
//
// The LIFO frontier carries (state, depth) pairs. Explored-set membership
// is checked at pop time, so a state may sit in the stack several times
// but is expanded at most once; the parent relation is (re)recorded at
// push time, last writer wins, which keeps the reconstructed path
// consistent with the entry that is actually popped first.
package dfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// frame pairs a frontier state with its depth from the start.
type frame struct {
	state puzzle.State
	depth int
}

// walker encapsulates mutable DFS state for one run.
type walker struct {
	goal    puzzle.State
	opts    Options
	stack   []frame
	visited map[puzzle.State]bool
	parent  map[puzzle.State]puzzle.State
	res     *Result
}

// Search runs depth-limited DFS from start toward goal. Returns
// ErrInvalidStart or ErrInvalidGoal for malformed states,
// ErrOptionViolation for a negative depth limit, or the context's error on
// cancellation. Not finding the goal within the bound is a normal FAILURE
// outcome carried in the Result, never an error.
//
// Complexity over the portion of the graph within the bound (V states,
// E moves): O(V + E) time, O(V) memory. The returned path is not
// guaranteed shortest — DFS trades optimality for a small frontier.
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
	w := &walker{
		goal:    goal,
		opts:    o,
		stack:   make([]frame, 0, 64),
		visited: make(map[puzzle.State]bool, 64),
		parent:  make(map[puzzle.State]puzzle.State, 64),
		res:     &Result{},
	}
	w.stack = append(w.stack, frame{state: start, depth: 0})

	err := w.loop(start)
	w.res.Elapsed = time.Since(began)

	return w.res, err
}

// loop pops frames until the goal is found, the stack empties, or the
// context is cancelled.
func (w *walker) loop(start puzzle.State) error {
	for len(w.stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Duplicates may be pushed before being checked; expand once.
		if w.visited[top.state] {
			continue
		}
		w.visited[top.state] = true
		w.res.Explored++

		// Goal test on pop — a node at the bound is still tested.
		if top.state == w.goal {
			w.res.Solved = true
			w.res.Path = puzzle.ReconstructPath(w.parent, start, top.state)

			return nil
		}

		// Depth bound: no expansion at or beyond the limit.
		if top.depth >= w.opts.DepthLimit {
			continue
		}

		for _, nbr := range top.state.Neighbors() {
			if w.visited[nbr] {
				continue
			}
			w.parent[nbr] = top.state
			w.stack = append(w.stack, frame{state: nbr, depth: top.depth + 1})
		}
	}

	return nil
}
