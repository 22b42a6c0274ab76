// Package informed defines options, error definitions, and the result
// type shared by greedy best-first search and A*.
package informed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Sentinel errors for informed search execution.
var (
	// ErrInvalidStart is returned when the start state is malformed.
	ErrInvalidStart = errors.New("informed: invalid start state")

	// ErrInvalidGoal is returned when the goal state is malformed.
	ErrInvalidGoal = errors.New("informed: invalid goal state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("informed: invalid option supplied")
)

// Option configures informed search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters shared by Greedy and AStar.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// Heuristic selects h1 (misplaced tiles) or h2 (Manhattan distance).
	// Defaults to puzzle.ManhattanDistance.
	Heuristic puzzle.Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and the
// Manhattan-distance heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: puzzle.ManhattanDistance,
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

// WithHeuristic selects the heuristic ranking the frontier. An undefined
// value is an option violation.
func WithHeuristic(h puzzle.Heuristic) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: unknown heuristic (%d)", ErrOptionViolation, h)

			return
		}
		o.Heuristic = h
	}
}

// Result holds the outcome of one informed search run.
type Result struct {
	// Solved reports whether the goal was reached.
	Solved bool

	// Path is the start → goal state sequence when Solved; nil otherwise.
	// AStar's path is optimal under unit step cost; Greedy's need not be.
	Path []puzzle.State

	// Explored counts nodes popped from the priority frontier and
	// goal-tested.
	Explored int

	// Heuristic names the estimate that ranked the frontier.
	Heuristic puzzle.Heuristic

	// Elapsed is the wall time spent inside the search.
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
