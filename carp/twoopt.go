package carp

import (
	"context"

	"github.com/rhartert/carp-ls/carp/routes"
)

// TwoOpt improves the order of the services of a single route by reversing
// segments with a first-improvement strategy: the first reversal that strictly
// reduces the route's cost is applied and the scan restarts from the start.
// The first service of the route is never moved.
//
// The search stops at a local optimum, after maxMoves accepted moves (if
// maxMoves > 0), or when ctx is done. TwoOpt returns the improved sequence, its
// cost, and the number of accepted moves. The input sequence is not modified.
func TwoOpt(ctx context.Context, p *Problem, seq *routes.Sequence, maxMoves int) (*routes.Sequence, int, int) {
	best := seq.Clone()
	bestCost := p.Cost(best.IDs())
	moves := 0

	for improved := true; improved && !exhausted(ctx, moves, maxMoves); {
		improved = false
	scan:
		for i := 1; i < best.Len()-1; i++ {
			for j := i + 1; j < best.Len(); j++ {
				candidate := best.Clone()
				candidate.Reverse(i, j)
				if c := p.Cost(candidate.IDs()); c < bestCost {
					best, bestCost = candidate, c
					moves++
					improved = true
					break scan
				}
			}
		}
	}

	return best, bestCost, moves
}
