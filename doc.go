// Package npuzzle is a comparative state-space search laboratory for the
// 3×3 sliding-tile puzzle: one canonical state model, seven search
// strategies, one result shape.
//
// 🚀 What is npuzzle?
//
//	A small, deterministic library that runs uninformed, informed, local,
//	and adversarial search over the same puzzle instance:
//		• puzzle/   — state representation, neighbor generation, actions,
//		              the two classic heuristics, path reconstruction
//		• bfs/      — breadth-first search (optimal under unit cost)
//		• dfs/      — depth-limited depth-first search
//		• informed/ — greedy best-first and A* over one priority frontier
//		• idastar/  — iterative-deepening A* (memory-bounded)
//		• anneal/   — simulated annealing with a seeded Metropolis walk
//		• minimax/  — minimax and alpha-beta over an artificial two-agent game
//
// ✨ Why npuzzle?
//
//   - Same instance in, comparable results out – every solver returns a
//     self-contained result (solved flag, path, explored count, diagnostics)
//   - Deterministic – fixed neighbor order, pinned tie-breaking, seeded RNG
//   - Pure Go – no cgo, no runtime deps
//
// Quick ASCII example:
//
//	    1 2 3        1 2 3
//	    B 4 6   ⇒    4 5 6
//	    7 5 8        7 8 B
//
//	is solved in three moves: Right, Down, Right.
//
// Each run owns its frontier, explored set, and counters; runs never share
// mutable state and never touch the filesystem or the network.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
