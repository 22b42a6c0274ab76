package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/puzzle"
)

func ExampleSearch() {
	start := puzzle.State{1, 2, 3, 0, 4, 6, 7, 5, 8}
	target := puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 0}

	res, err := bfs.Search(start, target)
	if err != nil {
		fmt.Println("search failed:", err)

		return
	}
	fmt.Println(res.Solved, res.Moves())
	fmt.Println(res.Actions())
	// Output:
	// true 3
	// [Right Down Right]
}
