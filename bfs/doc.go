// Package bfs runs breadth-first search on the sliding-tile state graph.
//
// What
//
//   - Search(start, goal, opts...) explores states in non-decreasing move
//     count from start, with a FIFO frontier.
//   - Returns a Result containing:
//   - Solved: whether the goal was dequeued
//   - Path: start → goal states (nil on failure)
//   - Explored: states dequeued and goal-tested
//   - Elapsed: wall time of the run
//
// Why
//
//   - Under unit step cost BFS returns a provably shortest solution, the
//     yardstick the informed and local strategies are compared against.
//
// Determinism
//
//	puzzle.Neighbors enumerates moves in the fixed order Up, Down, Left,
//	Right and BFS enqueues in that order, so the visit sequence and the
//	reported path are fully reproducible.
//
// Complexity (V = reachable states, E = moves between them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal  for malformed states.
//   - The context's error when cancelled via WithContext.
//
// An unsolvable instance is not an error: the run exhausts the reachable
// component and reports Solved=false with a finite Explored count.
package bfs
