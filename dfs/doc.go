// Package dfs runs depth-limited depth-first search on the sliding-tile
// state graph.
//
// What
//
//   - Search(start, goal, opts...) explores with a LIFO frontier carrying
//     per-entry depth; descent stops at the depth limit (default 50),
//     where nodes are goal-tested but not expanded.
//   - Explored-set membership is checked at pop time, so duplicate stack
//     entries are tolerated and resolved by first-pop-wins.
//
// Why
//
//   - DFS demonstrates the memory/optimality trade-off against BFS: a
//     frontier proportional to depth rather than breadth, at the price of
//     non-optimal paths and incompleteness beyond the bound. Both
//     properties are contractual — do not "fix" them.
//
// Complexity (within the bound: V states, E moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V) worst case for the stack and bookkeeping maps.
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal  for malformed states.
//   - ErrOptionViolation               for a negative depth limit.
//   - The context's error when cancelled via WithContext.
package dfs
