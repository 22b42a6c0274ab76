// Package minimax defines options, error definitions, and result types
// for adversarial search over puzzle states.
package minimax

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// DefaultDepth is the ply limit used when no WithDepth option is given.
const DefaultDepth = 6

// Sentinel errors for adversarial search execution.
var (
	// ErrInvalidStart is returned when the start state is malformed.
	ErrInvalidStart = errors.New("minimax: invalid start state")

	// ErrInvalidGoal is returned when the goal state is malformed.
	ErrInvalidGoal = errors.New("minimax: invalid goal state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("minimax: invalid option supplied")
)

// Option configures adversarial search via functional arguments.
type Option func(*Options)

// Options holds the ply limit for both Minimax and AlphaBeta.
type Options struct {
	// Depth is the ply limit (a move count, not a cost bound); > 0.
	Depth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Depth = DefaultDepth.
func DefaultOptions() Options {
	return Options{Depth: DefaultDepth}
}

// WithDepth sets the ply limit; d ≤ 0 is an option violation.
func WithDepth(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: depth must be positive (%d)", ErrOptionViolation, d)

			return
		}
		o.Depth = d
	}
}

// Result holds the outcome of one adversarial run: the move MAX should
// play from the start state and the backed-up utility behind it.
type Result struct {
	// BestMove is the successor state MAX selects.
	BestMove puzzle.State

	// BestAction labels BestMove as a blank move from the start state.
	BestAction puzzle.Direction

	// Value is the backed-up utility of BestMove (utility = −h2).
	Value int

	// Evaluated counts recursive evaluations performed, including leaves.
	Evaluated int

	// Elapsed is the wall time spent inside the run.
	Elapsed time.Duration
}

// Comparison reports a paired Minimax / AlphaBeta run on one instance:
// same chosen move, fewer nodes visited.
type Comparison struct {
	// Minimax and AlphaBeta are the two runs, same depth and instance.
	Minimax   *Result
	AlphaBeta *Result

	// SameMove reports whether both selected the same top-level move.
	// Pruning is behaviorally lossless, so this must hold.
	SameMove bool

	// Savings is 1 − alphaBetaNodes/minimaxNodes, in [0, 1).
	Savings float64
}
