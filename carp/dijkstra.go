package carp

import (
	"fmt"

	"github.com/rhartert/yagh"
)

// Dijkstra computes the all-pairs shortest paths of the digraph by running a
// single-source Dijkstra from every vertex. It produces the same distances as
// FloydWarshall in O(V * E log V) time, which is faster on sparse networks.
// Predecessors may differ between the two methods when several shortest paths
// exist.
func Dijkstra(g *Digraph) (*ShortestPaths, error) {
	for _, e := range g.Edges {
		if e.Cost < 0 {
			return nil, fmt.Errorf("segment (%d, %d): %w", e.From, e.To, ErrNegativeCost)
		}
	}

	sp := newShortestPaths(g.Index)
	h := yagh.New[int](sp.n)
	for src := 0; src < sp.n; src++ {
		shortestTree(g, src, h, sp.dist[src*sp.n:(src+1)*sp.n], sp.pred[src*sp.n:(src+1)*sp.n])
	}
	return sp, nil
}

// shortestTree computes the shortest paths tree rooted at src. Slices costs
// and prevs are the row of src in the distance and predecessor matrices, they
// must be initialized with Inf (except costs[src] = 0) and NoPred.
func shortestTree(g *Digraph, src int, h *yagh.IntMap[int], costs []int, prevs []int) {
	h.Put(src, 0)

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost

		for _, e := range g.Nexts[u] {
			newCost := c + g.Edges[e].Cost
			v := g.Edges[e].To

			// Path src -> u -> v is not better than the best known path.
			if costs[v] <= newCost {
				continue
			}

			costs[v] = newCost
			prevs[v] = u
			h.Put(v, newCost)
		}
	}
}
