// Package anneal implements simulated annealing over the sliding-tile
// state graph: a single-state stochastic walk with Metropolis acceptance
// and geometric cooling. No frontier, no parent relation — the accepted
// path is logged as the walk proceeds.
package anneal

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Search runs the annealing walk from start toward goal. Returns
// ErrInvalidStart, ErrInvalidGoal, or ErrOptionViolation for bad input.
// Stopping at the temperature floor or the iteration cap without reaching
// the goal is a normal FAILURE outcome: Result carries the best state
// seen and its distance instead of a solution path.
//
// Per iteration: goal test on h2(current); one uniformly random neighbor
// as candidate; Δ = h2(candidate) − h2(current); accept when Δ < 0,
// otherwise with probability e^(−Δ/T) (Metropolis); cool once regardless
// of acceptance.
//
// Complexity: O(MaxIterations) time, O(accepted moves) memory for the log.
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
	gp := puzzle.PositionsOf(goal)
	rng := rngFromSeed(o.Seed)

	temperature := o.T0
	current := start
	currentDist := puzzle.H2(current, gp)

	res := &Result{
		Path:         []puzzle.State{start},
		Best:         current,
		BestDistance: currentDist,
	}

	for iteration := 0; iteration < o.MaxIterations && temperature > o.Floor; iteration++ {
		res.Explored++

		// h2 is zero only at the true goal, so this doubles as the goal test.
		if currentDist == 0 {
			res.Solved = true

			break
		}

		candidates := current.Neighbors()
		candidate := candidates[rng.Intn(len(candidates))]
		candidateDist := puzzle.H2(candidate, gp)
		delta := candidateDist - currentDist

		if accept(delta, temperature, rng) {
			current = candidate
			currentDist = candidateDist
			res.Path = append(res.Path, current)

			if currentDist < res.BestDistance {
				res.BestDistance = currentDist
				res.Best = current
			}
		}

		// Cool after every iteration, accepted or not.
		temperature *= o.Cooling
	}

	res.FinalTemperature = temperature
	res.Elapsed = time.Since(began)

	return res, nil
}

// accept applies the Metropolis criterion: improvements unconditionally,
// worsening moves with probability e^(−Δ/T). Δ ≥ 0 keeps the probability
// in (0, 1].
func accept(delta int, temperature float64, rng *rand.Rand) bool {
	if delta < 0 {
		return true
	}

	return rng.Float64() < math.Exp(-float64(delta)/temperature)
}
