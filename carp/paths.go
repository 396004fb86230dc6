package carp

import (
	"fmt"
	"math"
)

// Inf is the distance between two vertices when no path connects them.
const Inf = math.MaxInt

// NoPred marks an unset entry of the predecessor matrix.
const NoPred = -1

// ShortestPaths holds the all-pairs distance and predecessor matrices of a
// network. Both matrices are stored in contiguous row-major slices.
//
// Dist(i, i) is always 0 and Dist(i, j) is Inf if j cannot be reached from i.
// Pred(i, j) is the vertex preceding j on a shortest path from i to j, or
// NoPred if i == j or if j is unreachable.
type ShortestPaths struct {
	Index *VertexIndex
	n     int
	dist  []int
	pred  []int
}

func newShortestPaths(index *VertexIndex) *ShortestPaths {
	n := index.Len()
	sp := &ShortestPaths{
		Index: index,
		n:     n,
		dist:  make([]int, n*n),
		pred:  make([]int, n*n),
	}
	for i := range sp.dist {
		sp.dist[i] = Inf
		sp.pred[i] = NoPred
	}
	for i := 0; i < n; i++ {
		sp.dist[i*n+i] = 0
	}
	return sp
}

// Len returns the number of vertices.
func (sp *ShortestPaths) Len() int {
	return sp.n
}

// Dist returns the shortest travel cost from i to j.
func (sp *ShortestPaths) Dist(i int, j int) int {
	return sp.dist[i*sp.n+j]
}

// Pred returns the vertex preceding j on a shortest path from i to j.
func (sp *ShortestPaths) Pred(i int, j int) int {
	return sp.pred[i*sp.n+j]
}

// Between returns the shortest travel cost from vertex u to vertex v.
func (sp *ShortestPaths) Between(u Vertex, v Vertex) (int, error) {
	i, ok := sp.Index.Index(u)
	if !ok {
		return 0, fmt.Errorf("vertex %q: %w", u, ErrUnknownVertex)
	}
	j, ok := sp.Index.Index(v)
	if !ok {
		return 0, fmt.Errorf("vertex %q: %w", v, ErrUnknownVertex)
	}
	d := sp.Dist(i, j)
	if d == Inf {
		return 0, fmt.Errorf("no path from %q to %q: %w", u, v, ErrUnreachable)
	}
	return d, nil
}

// Path returns the sequence of vertices of a shortest path from i to j, both
// included. The second returned value is false if j is unreachable from i or
// if the predecessor chain is broken before reaching i. A partial path is never
// returned.
func (sp *ShortestPaths) Path(i int, j int) ([]int, bool) {
	if i == j {
		return []int{i}, true
	}
	if sp.Dist(i, j) == Inf {
		return nil, false
	}

	path := []int{j}
	for current := j; current != i; {
		current = sp.Pred(i, current)
		if current == NoPred || len(path) == sp.n {
			return nil, false
		}
		path = append(path, current)
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, true
}

// FloydWarshall computes the all-pairs shortest paths of the digraph in
// O(V^3) time. Parallel segments are resolved by keeping the cheapest one.
func FloydWarshall(g *Digraph) *ShortestPaths {
	sp := newShortestPaths(g.Index)
	n := sp.n

	// Direct segments first. The diagonal is never relaxed since costs are
	// non-negative.
	for _, e := range g.Edges {
		ij := e.From*n + e.To
		if e.Cost < sp.dist[ij] {
			sp.dist[ij] = e.Cost
			sp.pred[ij] = e.From
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := sp.dist[i*n+k]
			if dik == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := sp.dist[k*n+j]
				if dkj == Inf {
					continue
				}
				if d := dik + dkj; d < sp.dist[i*n+j] {
					sp.dist[i*n+j] = d
					sp.pred[i*n+j] = sp.pred[k*n+j]
				}
			}
		}
	}

	return sp
}

// addCost returns a+b, or Inf if either cost is Inf.
func addCost(a int, b int) int {
	if a == Inf || b == Inf {
		return Inf
	}
	return a + b
}
