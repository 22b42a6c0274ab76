// Package idastar defines options, error definitions, and the result
// type for iterative-deepening A*.
package idastar

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Sentinel errors for IDA* execution.
var (
	// ErrInvalidStart is returned when the start state is malformed.
	ErrInvalidStart = errors.New("idastar: invalid start state")

	// ErrInvalidGoal is returned when the goal state is malformed.
	ErrInvalidGoal = errors.New("idastar: invalid goal state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("idastar: invalid option supplied")
)

// Option configures IDA* behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize IDA* execution.
type Options struct {
	// Heuristic selects h1 (misplaced tiles) or h2 (Manhattan distance).
	// Defaults to puzzle.ManhattanDistance.
	Heuristic puzzle.Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Manhattan-distance heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: puzzle.ManhattanDistance}
}

// WithHeuristic selects the heuristic bounding the threshold search.
// An undefined value is an option violation.
func WithHeuristic(h puzzle.Heuristic) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: unknown heuristic (%d)", ErrOptionViolation, h)

			return
		}
		o.Heuristic = h
	}
}

// Result holds the outcome of one IDA* run.
type Result struct {
	// Solved reports whether the goal was reached.
	Solved bool

	// Path is the start → goal state sequence when Solved; nil otherwise.
	// The path length equals A*'s with the same heuristic.
	Path []puzzle.State

	// Explored counts nodes admitted under the threshold, cumulative
	// across all iterations. Nodes rejected for f > threshold are not
	// counted.
	Explored int

	// Iterations is the number of threshold escalations performed,
	// including the final successful (or exhausting) probe.
	Iterations int

	// Heuristic names the estimate that bounded the search.
	Heuristic puzzle.Heuristic

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
