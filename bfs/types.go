// Package bfs provides options, error definitions, and the result type
// for breadth-first search over puzzle states.
package bfs

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Sentinel errors for BFS execution.
var (
	// ErrInvalidStart is returned when the start state is malformed.
	ErrInvalidStart = errors.New("bfs: invalid start state")

	// ErrInvalidGoal is returned when the goal state is malformed.
	ErrInvalidGoal = errors.New("bfs: invalid goal state")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of one BFS run. Failure to reach the goal is
// not an error: Solved is false and Explored reports the work done.
type Result struct {
	// Solved reports whether the goal was reached.
	Solved bool

	// Path is the start → goal state sequence when Solved; nil otherwise.
	Path []puzzle.State

	// Explored counts states dequeued and goal-tested.
	Explored int

	// Elapsed is the wall time spent inside Search.
	Elapsed time.Duration
}

// Moves returns the number of moves on the solution path (0 when unsolved
// or when start equals goal).
func (r *Result) Moves() int {
	if len(r.Path) < 2 {
		return 0
	}

	return len(r.Path) - 1
}

// Actions labels the solution path with blank moves; nil when unsolved.
func (r *Result) Actions() []puzzle.Direction {
	return puzzle.Actions(r.Path)
}
