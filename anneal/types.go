// Package anneal defines options, error definitions, and the result type
// for simulated annealing over puzzle states.
package anneal

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Schedule defaults, matching the classic geometric cooling setup.
const (
	// DefaultInitialTemperature is T0, the starting temperature.
	DefaultInitialTemperature = 1000.0

	// DefaultCooling is the multiplicative factor applied once per
	// iteration; must lie strictly inside (0, 1).
	DefaultCooling = 0.9995

	// DefaultFloor stops the walk once the temperature drops to or below it.
	DefaultFloor = 0.001

	// DefaultMaxIterations is the hard iteration cap.
	DefaultMaxIterations = 500000
)

// Sentinel errors for simulated annealing execution.
var (
	// ErrInvalidStart is returned when the start state is malformed.
	ErrInvalidStart = errors.New("anneal: invalid start state")

	// ErrInvalidGoal is returned when the goal state is malformed.
	ErrInvalidGoal = errors.New("anneal: invalid goal state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("anneal: invalid option supplied")
)

// Option configures the annealing schedule via functional arguments.
type Option func(*Options)

// Options holds the cooling schedule and the RNG seed.
type Options struct {
	// T0 is the initial temperature (> 0).
	T0 float64

	// Cooling is the per-iteration multiplicative factor, in (0, 1).
	Cooling float64

	// Floor stops the run once temperature ≤ Floor (> 0).
	Floor float64

	// MaxIterations caps the walk regardless of temperature (> 0).
	MaxIterations int

	// Seed drives the deterministic random source. Seed == 0 selects the
	// fixed default stream, so every run is reproducible by construction.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the default schedule: T0 = 1000,
// Cooling = 0.9995, Floor = 0.001, MaxIterations = 500000, Seed = 0.
func DefaultOptions() Options {
	return Options{
		T0:            DefaultInitialTemperature,
		Cooling:       DefaultCooling,
		Floor:         DefaultFloor,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithInitialTemperature sets T0; t ≤ 0 is an option violation.
func WithInitialTemperature(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: initial temperature must be positive (%g)", ErrOptionViolation, t)

			return
		}
		o.T0 = t
	}
}

// WithCooling sets the multiplicative cooling factor; values outside
// (0, 1) are option violations.
func WithCooling(c float64) Option {
	return func(o *Options) {
		if c <= 0 || c >= 1 {
			o.err = fmt.Errorf("%w: cooling factor must be in (0,1) (%g)", ErrOptionViolation, c)

			return
		}
		o.Cooling = c
	}
}

// WithFloor sets the temperature floor; f ≤ 0 is an option violation.
func WithFloor(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: temperature floor must be positive (%g)", ErrOptionViolation, f)

			return
		}
		o.Floor = f
	}
}

// WithMaxIterations caps the walk; n ≤ 0 is an option violation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: iteration cap must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// WithSeed fixes the random stream. Seed 0 keeps the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// Result holds the outcome of one annealing run. On failure the best
// state reached and its distance replace the path as the useful output.
type Result struct {
	// Solved reports whether the walk reached h2 == 0.
	Solved bool

	// Path is the accepted-state log, starting at the initial state.
	// Only meaningful as a solution when Solved.
	Path []puzzle.State

	// Explored counts iterations consumed (one candidate per iteration).
	Explored int

	// FinalTemperature is the temperature when the walk stopped.
	FinalTemperature float64

	// Best is the closest-to-goal state ever accepted.
	Best puzzle.State

	// BestDistance is H2(Best); 0 iff Solved.
	BestDistance int

	// Elapsed is the wall time spent inside Search.
	Elapsed time.Duration
}

// Moves returns the number of accepted moves on the walk.
func (r *Result) Moves() int {
	if len(r.Path) < 2 {
		return 0
	}

	return len(r.Path) - 1
}
