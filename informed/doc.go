// Package informed runs heuristic-guided best-first search on the
// sliding-tile state graph: greedy best-first and A*, sharing one
// priority frontier built on container/heap.
//
// What
//
//   - Greedy(start, goal, opts...): frontier ordered by h alone; explored
//     check at pop, first-pop-wins; fast, not optimal.
//   - AStar(start, goal, opts...): frontier ordered by f = g+h, ties
//     broken by smaller h; best-known-g map with lazy decrease-key (stale
//     entries skipped at pop); optimal under unit step cost with either
//     heuristic.
//   - WithHeuristic selects puzzle.MisplacedTiles (h1) or
//     puzzle.ManhattanDistance (h2, the default).
//
// Determinism
//
//	The total frontier order is pinned (f then h for A*, h for Greedy),
//	and neighbor insertion follows the fixed Up, Down, Left, Right order,
//	so repeated runs produce identical paths and counts. The resolution
//	of remaining ties is implementation-defined by heap mechanics but
//	deterministic for a fixed insertion order.
//
// Complexity (V = reachable states, E = moves)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) worst case under duplicate frontier entries.
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal  for malformed states.
//   - ErrOptionViolation               for an unknown heuristic.
//   - The context's error when cancelled via WithContext.
package informed
