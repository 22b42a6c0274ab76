// Package minimax - alpha-beta pruning over the same artificial game.
//
// Alpha is the best value MAX can already guarantee on the current path,
// beta the best value MIN can. Once beta ≤ alpha the remaining siblings
// cannot influence the decision and are skipped. For a fixed depth and
// the fixed neighbor order, the chosen top-level move is identical to
// plain minimax's while the node count never exceeds it — pruning is
// behaviorally lossless.
package minimax

import (
	"math"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// alphabeta backs up the minimax value of s under (alpha, beta) bounds.
func (g *game) alphabeta(s puzzle.State, depth, alpha, beta int, isMax bool) int {
	g.evaluated++

	if depth == 0 || s == g.goal {
		return g.utility(s)
	}

	if isMax {
		best := math.MinInt
		for _, next := range s.Neighbors() {
			if g.visited[next] {
				continue
			}
			g.visited[next] = true
			v := g.alphabeta(next, depth-1, alpha, beta, false)
			delete(g.visited, next)

			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break // beta cutoff
			}
		}
		if best == math.MinInt {
			return g.utility(s)
		}

		return best
	}

	worst := math.MaxInt
	for _, next := range s.Neighbors() {
		if g.visited[next] {
			continue
		}
		g.visited[next] = true
		v := g.alphabeta(next, depth-1, alpha, beta, true)
		delete(g.visited, next)

		if v < worst {
			worst = v
		}
		if worst < beta {
			beta = worst
		}
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	if worst == math.MaxInt {
		return g.utility(s)
	}

	return worst
}

// AlphaBeta selects MAX's best move from start with alpha-beta pruning to
// the configured ply depth. Same contract and errors as Minimax; for a
// fixed depth it selects the same move while evaluating no more nodes.
func AlphaBeta(start, goal puzzle.State, opts ...Option) (*Result, error) {
	o, err := buildOptions(start, goal, opts)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	g := &game{
		goal:    goal,
		gp:      puzzle.PositionsOf(goal),
		visited: map[puzzle.State]bool{start: true},
	}

	res := &Result{BestAction: puzzle.None, Value: math.MinInt}
	for _, next := range start.Neighbors() {
		g.visited[next] = true
		v := g.alphabeta(next, o.Depth-1, math.MinInt, math.MaxInt, false)
		delete(g.visited, next)

		if v > res.Value {
			res.Value = v
			res.BestMove = next
			res.BestAction = puzzle.Action(start, next)
		}
	}

	res.Evaluated = g.evaluated
	res.Elapsed = time.Since(began)

	return res, nil
}

// Compare runs Minimax and AlphaBeta back to back on the same instance
// and depth, and reports whether pruning preserved the decision along
// with the fraction of evaluations it saved.
func Compare(start, goal puzzle.State, opts ...Option) (*Comparison, error) {
	mm, err := Minimax(start, goal, opts...)
	if err != nil {
		return nil, err
	}
	ab, err := AlphaBeta(start, goal, opts...)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		Minimax:   mm,
		AlphaBeta: ab,
		SameMove:  mm.BestMove == ab.BestMove,
	}
	if mm.Evaluated > 0 {
		cmp.Savings = 1 - float64(ab.Evaluated)/float64(mm.Evaluated)
	}

	return cmp, nil
}
