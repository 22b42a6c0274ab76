// Package dfs defines options, error definitions, and the result type for
// depth-limited depth-first search over puzzle states.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// DefaultDepthLimit bounds descent when no WithDepthLimit option is given.
const DefaultDepthLimit = 50

// Sentinel errors for DFS execution.
var (
	// ErrInvalidStart is returned when the start state is malformed.
	ErrInvalidStart = errors.New("dfs: invalid start state")

	// ErrInvalidGoal is returned when the goal state is malformed.
	ErrInvalidGoal = errors.New("dfs: invalid goal state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds parameters to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// DepthLimit prunes descent: a node at this depth is still goal-tested
	// but never expanded. The limit makes DFS incomplete beyond the bound;
	// that trade-off is the point of the algorithm, not a defect.
	DepthLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and
// DepthLimit = DefaultDepthLimit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: DefaultDepthLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthLimit bounds descent to the given depth.
//
//	d >= 0: nodes at depth d are goal-tested but not expanded
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.DepthLimit = d
	}
}

// Result holds the outcome of one depth-limited DFS run. A path returned
// by DFS is some path within the bound, not necessarily a shortest one.
type Result struct {
	// Solved reports whether the goal was reached within the depth limit.
	Solved bool

	// Path is the start → goal state sequence when Solved; nil otherwise.
	Path []puzzle.State

	// Explored counts states popped, first-seen, and goal-tested.
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
