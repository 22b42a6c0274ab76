// Package idastar runs iterative-deepening A* on the sliding-tile state
// graph.
//
// What
//
//   - Search(start, goal, opts...) probes depth-first under an f = g+h
//     threshold, starting at h(start); each iteration escalates the
//     threshold to the minimum f that was rejected, until the goal is
//     found or no finite rejection remains (exhaustion).
//   - Result reports the cumulative explored count across iterations and
//     the iteration count itself, alongside the usual solved/path fields.
//
// Why
//
//   - IDA* returns paths of the same length as A* with the same heuristic
//     while holding only the current root-to-node path in memory: cycle
//     avoidance is path-local, O(depth), with no frontier and no global
//     explored set.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - Time:   O(b^d) worst case, with earlier iterations re-expanded.
//   - Memory: O(d).
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal  for malformed states.
//   - ErrOptionViolation               for an unknown heuristic.
package idastar
