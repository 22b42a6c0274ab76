// Package minimax runs adversarial search on the sliding-tile state
// graph, recasting the single-agent puzzle as an artificial two-agent
// game to study pruning.
//
// What
//
//   - Minimax(start, goal, opts...): MAX maximizes utility = −h2, MIN
//     minimizes it, alternating plies down to a fixed depth limit; a
//     branch terminates early at the goal. The result is MAX's best
//     top-level move, its action label, backed-up value, and the count of
//     recursive evaluations.
//   - AlphaBeta(start, goal, opts...): same decision with (alpha, beta)
//     bounds and sibling cutoffs once beta ≤ alpha.
//   - Compare(start, goal, opts...): both runs paired, with the
//     pruning-savings fraction 1 − alphaBetaNodes/minimaxNodes.
//
// Invariant
//
//	For a fixed depth and the fixed neighbor order, AlphaBeta selects the
//	same top-level move as Minimax and evaluates no more nodes. Pruning
//	must stay behaviorally lossless; the test suite pins this.
//
// Cycle handling
//
//	The visited set is scoped to the current root-to-leaf path: marked
//	before each recursive call, unmarked after it returns — including
//	cutoff exits. A node with no unvisited neighbor falls back to its own
//	utility instead of failing.
//
// Complexity (b ≤ 4, d = ply depth)
//
//   - Time:   O(b^d) for minimax; alpha-beta approaches O(b^(d/2)) with
//     favorable move ordering.
//   - Memory: O(d).
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal  for malformed states.
//   - ErrOptionViolation               for a non-positive depth.
package minimax
