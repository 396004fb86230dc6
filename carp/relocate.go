package carp

import (
	"context"

	"github.com/rhartert/carp-ls/carp/routes"
)

// Relocate moves single services from one route to the end of another one
// whenever this strictly reduces the combined cost of both routes and keeps
// the receiving route within capacity. Moves that would empty a route are not
// considered. Like TwoOpt, it applies the first improving move and restarts
// the scan from the first pair of routes.
//
// The search stops at a local optimum, after maxMoves accepted moves (if
// maxMoves > 0), or when ctx is done. Relocate returns the new routes and the
// number of accepted moves. The input sequences are not modified.
func Relocate(ctx context.Context, p *Problem, seqs []*routes.Sequence, maxMoves int) ([]*routes.Sequence, int) {
	current := make([]*routes.Sequence, len(seqs))
	costs := make([]int, len(seqs))
	ids := make([][]int, len(seqs))
	for r, s := range seqs {
		current[r] = s.Clone()
		ids[r] = s.IDs()
		costs[r] = p.Cost(ids[r])
	}
	loads := NewRouteLoads(p, ids)

	moves := 0
	for improved := true; improved && !exhausted(ctx, moves, maxMoves); {
		improved = false
	scan:
		for i := range current {
			for j := range current {
				if i == j {
					continue
				}
				for pos := 0; pos < current[i].Len(); pos++ {
					if !current[i].CanRemove(pos) {
						continue
					}

					id := current[i].At(pos)
					if !loads.Move(i, j, p.Demand(id)) {
						continue
					}

					newI := current[i].Clone()
					newI.Remove(pos)
					newJ := current[j].Clone()
					newJ.Append(id)
					costI, costJ := p.Cost(newI.IDs()), p.Cost(newJ.IDs())

					if addCost(costI, costJ) >= addCost(costs[i], costs[j]) {
						loads.Undo()
						continue
					}

					loads.Commit()
					current[i], current[j] = newI, newJ
					costs[i], costs[j] = costI, costJ
					moves++
					improved = true
					break scan
				}
			}
		}
	}

	return current, moves
}
