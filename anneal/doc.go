// Package anneal runs simulated annealing on the sliding-tile state
// graph: a single-state stochastic walk, not a frontier search.
//
// What
//
//   - Search(start, goal, opts...) walks from state to state, accepting a
//     uniformly random neighbor unconditionally when it improves h2 and
//     with Metropolis probability e^(−Δ/T) otherwise, cooling the
//     temperature geometrically once per iteration.
//   - Stops when h2 reaches 0 (solved), the temperature hits the floor,
//     or the iteration cap is reached.
//   - Result logs the accepted path, the final temperature, and the best
//     state/distance ever reached — the useful diagnostics on failure.
//
// Determinism
//
//	The only randomness is the seeded math/rand stream (seed 0 selects a
//	fixed default stream). Fixing the seed fixes the entire run: the
//	accepted path, the best distance, the final temperature.
//
// Complexity
//
//   - Time:   O(MaxIterations)
//   - Memory: O(accepted moves) for the path log.
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal  for malformed states.
//   - ErrOptionViolation               for schedule parameters out of range.
package anneal
