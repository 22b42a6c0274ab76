package informed_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/informed"
	"github.com/katalvlaran/npuzzle/puzzle"
)

// ExampleAStar solves a board three moves from its goal. The optimal
// action sequence is unique, so the output is fully deterministic.
func ExampleAStar() {
	start := puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}
	goal := puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 0}

	res, err := informed.AStar(start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Solved, res.Moves(), res.Actions())
	// Output:
	// true 3 [Right Down Right]
}

// ExampleGreedy shows heuristic selection through options.
func ExampleGreedy() {
	start := puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}
	goal := puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 0}

	res, err := informed.Greedy(start, goal,
		informed.WithHeuristic(puzzle.MisplacedTiles))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Solved, res.Heuristic)
	// Output:
	// true misplaced tiles
}
