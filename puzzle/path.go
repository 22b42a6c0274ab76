package puzzle

// ReconstructPath rebuilds the start → goal state sequence from a parent
// relation recorded at discovery time by a frontier-based search.
// It walks backward from goal until start (or a state with no recorded
// parent) is reached, then reverses in place. The returned path includes
// both endpoints; len(path)-1 is the move count.
// Complexity: O(path length).
func ReconstructPath(parent map[State]State, start, goal State) []State {
	path := []State{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Actions labels each consecutive pair of states in path with the blank
// move that connects them. Non-adjacent pairs yield None.
// Complexity: O(len(path)).
func Actions(path []State) []Direction {
	if len(path) < 2 {
		return nil
	}
	out := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		out = append(out, Action(path[i-1], path[i]))
	}

	return out
}
