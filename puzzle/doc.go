// Package puzzle models the 3×3 sliding-tile puzzle ("manuscript
// sorting"): a board of eight labeled tiles plus one blank, where a move
// slides an adjacent tile into the blank cell.
//
// What
//
//   - State: a [9]int permutation of {0..8} in row-major order, 0 = blank.
//     A comparable value type — map keys use the array directly.
//   - Neighbors: the states reachable by one blank move, produced in the
//     fixed Direction order Up, Down, Left, Right.
//   - Action: recovers the Direction between two blank-adjacent states
//     (None otherwise).
//   - H1 / H2: the misplaced-tiles and Manhattan-distance heuristics,
//     both admissible and consistent under unit step cost.
//   - PositionsOf: precomputes the tile → goal-cell table for H2.
//   - Solvable: inversion-parity reachability test between two states.
//   - ReconstructPath / Actions: turn a discovery-time parent relation
//     into the start → goal move sequence.
//
// Why
//
//	Every solver in npuzzle (bfs, dfs, informed, idastar, anneal, minimax)
//	consumes exactly this model; keeping it in one place guarantees all
//	strategies search the same graph with the same deterministic
//	neighbor ordering.
//
// Determinism
//
//	Neighbors enumerates directions in a fixed order, so every solver's
//	expansion order — and therefore its reported action sequence — is
//	reproducible across runs.
//
// Errors
//
//   - ErrInvalidState   if a State is not a permutation of 0..8.
package puzzle
