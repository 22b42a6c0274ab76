// Package puzzle defines the canonical state model, sentinel errors, and
// direction/heuristic enumerations shared by every solver in npuzzle.
package puzzle

import "errors"

const (
	// Size is the side length of the board.
	Size = 3

	// BoardLen is the number of cells, including the blank.
	BoardLen = Size * Size

	// Blank is the tile value that marks the movable empty cell.
	Blank = 0
)

// Sentinel errors for state validation.
var (
	// ErrInvalidState is returned when a State is not a permutation of
	// 0..8 with exactly one blank.
	ErrInvalidState = errors.New("puzzle: invalid state")
)

// State is one puzzle configuration: a permutation of {0..8} in row-major
// order, with Blank (0) as the empty cell. State is a comparable value
// type; use it directly as a map key — never a stringified form.
type State [BoardLen]int

// Coord addresses a cell by its row and column on the Size×Size board.
type Coord struct {
	Row, Col int
}

// Direction labels a blank move. The fixed enumeration order
// Up, Down, Left, Right is part of the neighbor-generation contract:
// it pins deterministic tie-breaking and the reported action sequence.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// None is the sentinel Direction returned by Action for states that are
// not blank-adjacent.
const None Direction = -1

// deltas holds the row/col displacement per Direction, indexed by the
// enumeration order above.
var deltas = [...]Coord{
	{Row: -1, Col: 0}, // Up
	{Row: 1, Col: 0},  // Down
	{Row: 0, Col: -1}, // Left
	{Row: 0, Col: 1},  // Right
}

var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// String returns the action label, or "?" for None and out-of-range values.
func (d Direction) String() string {
	if d < Up || d > Right {
		return "?"
	}

	return directionNames[d]
}

// GoalPositions maps each tile value to its (row, col) in the goal state.
// Index by tile value; the Blank entry is present but unused by H2.
type GoalPositions [BoardLen]Coord

// Heuristic selects one of the two admissible, consistent estimates used
// by the informed and iterative-deepening solvers.
type Heuristic int

const (
	// MisplacedTiles counts non-blank tiles that sit on the wrong cell (h1).
	MisplacedTiles Heuristic = iota

	// ManhattanDistance sums each non-blank tile's row+col distance to its
	// goal cell (h2).
	ManhattanDistance
)

var heuristicNames = [...]string{"misplaced tiles", "manhattan distance"}

// String returns the heuristic's report name, or "?" for unknown values.
func (h Heuristic) String() string {
	if h < MisplacedTiles || h > ManhattanDistance {
		return "?"
	}

	return heuristicNames[h]
}

// Valid reports whether h is one of the defined heuristics.
func (h Heuristic) Valid() bool {
	return h == MisplacedTiles || h == ManhattanDistance
}
