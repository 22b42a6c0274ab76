package informed

import "github.com/katalvlaran/npuzzle/puzzle"

// node is an ephemeral frontier entry; g is the accumulated cost, h the
// heuristic estimate, f their sum. Greedy ignores g and f.
type node struct {
	state puzzle.State
	g     int
	h     int
	f     int
}

// frontier is a min-heap of nodes implementing container/heap.
// The total order is pinned for reproducible output:
//   - byF == true  (A*):    f ascending, ties broken by smaller h
//   - byF == false (Greedy): h ascending
//
// Equal keys are resolved by heap mechanics, which are deterministic for
// a fixed insertion order.
type frontier struct {
	nodes []*node
	byF   bool
}

func (pq *frontier) Len() int { return len(pq.nodes) }

func (pq *frontier) Less(i, j int) bool {
	a, b := pq.nodes[i], pq.nodes[j]
	if pq.byF {
		if a.f != b.f {
			return a.f < b.f
		}

		return a.h < b.h
	}

	return a.h < b.h
}

func (pq *frontier) Swap(i, j int) {
	pq.nodes[i], pq.nodes[j] = pq.nodes[j], pq.nodes[i]
}

func (pq *frontier) Push(x any) {
	pq.nodes = append(pq.nodes, x.(*node))
}

func (pq *frontier) Pop() any {
	old := pq.nodes
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.nodes = old[:n-1]

	return item
}
