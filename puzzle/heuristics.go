package puzzle

// PositionsOf builds the tile → goal-cell table consumed by H2.
// Complexity: O(BoardLen).
func PositionsOf(goal State) GoalPositions {
	var gp GoalPositions
	for i, v := range goal {
		gp[v] = Coord{Row: i / Size, Col: i % Size}
	}

	return gp
}

// H1 counts non-blank tiles whose cell differs from the goal's (h1,
// misplaced tiles). Admissible and consistent under unit-cost moves:
// one move relocates one tile, so h1 changes by at most 1.
// Complexity: O(BoardLen).
func H1(s, goal State) int {
	count := 0
	for i, v := range s {
		if v != Blank && v != goal[i] {
			count++
		}
	}

	return count
}

// H2 sums each non-blank tile's Manhattan distance to its goal cell (h2).
// Admissible and consistent: one move shifts one tile by one cell, so h2
// changes by exactly ±1. A* and IDA* optimality rest on this property;
// the formula must not drift.
// Complexity: O(BoardLen).
func H2(s State, gp GoalPositions) int {
	dist := 0
	for i, v := range s {
		if v == Blank {
			continue
		}
		row, col := i/Size, i%Size
		dist += abs(row-gp[v].Row) + abs(col-gp[v].Col)
	}

	return dist
}

// Evaluate applies the selected heuristic to s against goal.
// gp must be PositionsOf(goal); it is accepted precomputed so callers pay
// the table build once per run, not once per node.
func (h Heuristic) Evaluate(s, goal State, gp GoalPositions) int {
	if h == MisplacedTiles {
		return H1(s, goal)
	}

	return H2(s, gp)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
