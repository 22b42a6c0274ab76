package puzzle

import (
	"fmt"
	"strings"
)

// Validate checks that s is a permutation of 0..8 with exactly one blank.
// Returns ErrInvalidState (wrapped with the offending value) otherwise.
// Complexity: O(BoardLen).
func (s State) Validate() error {
	var seen [BoardLen]bool
	for i, v := range s {
		if v < 0 || v >= BoardLen {
			return fmt.Errorf("%w: value %d at cell %d out of range", ErrInvalidState, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d appears more than once", ErrInvalidState, v)
		}
		seen[v] = true
	}

	return nil
}

// BlankIndex returns the row-major index of the blank, or -1 if absent.
// Complexity: O(BoardLen).
func (s State) BlankIndex() int {
	for i, v := range s {
		if v == Blank {
			return i
		}
	}

	return -1
}

// swap returns a copy of s with cells i and j exchanged.
// States are immutable: every move produces a fresh State.
func (s State) swap(i, j int) State {
	s[i], s[j] = s[j], s[i]

	return s
}

// Neighbors generates every state reachable by one blank move, in the
// fixed Direction order Up, Down, Left, Right. Out-of-bounds moves are
// skipped, so corners yield 2 neighbors, edges 3, and the center 4.
// Complexity: O(1) moves, O(BoardLen) per produced state copy.
func (s State) Neighbors() []State {
	blank := s.BlankIndex()
	row, col := blank/Size, blank%Size

	out := make([]State, 0, len(deltas))
	for _, d := range deltas {
		nr, nc := row+d.Row, col+d.Col
		if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
			continue
		}
		out = append(out, s.swap(blank, nr*Size+nc))
	}

	return out
}

// Action infers the Direction whose row/col delta matches the blank's
// displacement from 'from' to 'to'. Returns None when the two states are
// not related by a single blank move.
// Complexity: O(BoardLen).
func Action(from, to State) Direction {
	if from.swap(from.BlankIndex(), to.BlankIndex()) != to {
		return None
	}
	bf, bt := from.BlankIndex(), to.BlankIndex()
	dr := bt/Size - bf/Size
	dc := bt%Size - bf%Size
	for d, delta := range deltas {
		if delta.Row == dr && delta.Col == dc {
			return Direction(d)
		}
	}

	return None
}

// Solvable reports whether goal is reachable from start. On an odd-width
// board the parity of tile-only inversions is invariant under blank
// moves, so the two states are mutually reachable iff the permutation
// carrying start's tile sequence onto goal's is even.
// Complexity: O(BoardLen²).
func Solvable(start, goal State) bool {
	// Rank each tile by its reading-order position in the goal, blank skipped.
	var rank [BoardLen]int
	r := 0
	for _, v := range goal {
		if v != Blank {
			rank[v] = r
			r++
		}
	}

	seq := make([]int, 0, BoardLen-1)
	for _, v := range start {
		if v != Blank {
			seq = append(seq, rank[v])
		}
	}

	inversions := 0
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inversions++
			}
		}
	}

	return inversions%2 == 0
}

// String renders the state on one line, rows separated by " / " and the
// blank shown as "B": "1 2 3 / B 4 6 / 7 5 8".
func (s State) String() string {
	var b strings.Builder
	for i, v := range s {
		if v == Blank {
			b.WriteByte('B')
		} else {
			fmt.Fprintf(&b, "%d", v)
		}
		switch {
		case i == BoardLen-1:
		case i%Size == Size-1:
			b.WriteString(" / ")
		default:
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// Grid renders the state as a three-line block, one row per line,
// trailing newline included.
func (s State) Grid() string {
	var b strings.Builder
	for i, v := range s {
		if v == Blank {
			b.WriteByte('B')
		} else {
			fmt.Fprintf(&b, "%d", v)
		}
		if i%Size == Size-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}
