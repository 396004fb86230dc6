// Package stats computes descriptive statistics of a CARP instance's network.
package stats

import (
	"github.com/rhartert/carp-ls/carp"
	"github.com/rhartert/sparsesets"
)

// Stats summarizes the network of an instance. Edges and Arcs count every
// traversable link, required or not.
type Stats struct {
	Vertices         int                 `yaml:"vertices"`
	Edges            int                 `yaml:"edges"`
	Arcs             int                 `yaml:"arcs"`
	RequiredVertices int                 `yaml:"required_vertices"`
	RequiredEdges    int                 `yaml:"required_edges"`
	RequiredArcs     int                 `yaml:"required_arcs"`
	Density          float64             `yaml:"density"`
	Components       int                 `yaml:"connected_components"`
	MinDegree        int                 `yaml:"min_degree"`
	MaxDegree        int                 `yaml:"max_degree"`
	AvgPathLength    float64             `yaml:"average_path_length"`
	Diameter         int                 `yaml:"diameter"`
	Betweenness      map[carp.Vertex]int `yaml:"betweenness"`
}

// Compute returns the statistics of the instance. Distances are taken from sp
// which must be indexed on the instance's vertices.
func Compute(inst *carp.Instance, sp *carp.ShortestPaths) *Stats {
	vertices := inst.Vertices()
	edges, arcs := links(inst)

	st := &Stats{
		Vertices: len(vertices),
		Edges:    len(edges),
		Arcs:     len(arcs),
	}
	for _, s := range inst.Catalog.Services() {
		switch s.Kind {
		case carp.KindNode:
			st.RequiredVertices++
		case carp.KindEdge:
			st.RequiredEdges++
		case carp.KindArc:
			st.RequiredArcs++
		}
	}
	if n := len(vertices); n > 1 {
		st.Density = float64(len(edges)+len(arcs)) / float64(n*(n-1))
	}

	index := carp.NewVertexIndex(vertices)
	st.Components = components(index, edges, arcs)
	st.MinDegree, st.MaxDegree = degrees(index, edges, arcs)
	st.AvgPathLength, st.Diameter = distances(sp)
	st.Betweenness = betweenness(sp)
	return st
}

// links returns the edges and arcs of the network: those of the graph
// followed by the required ones.
func links(inst *carp.Instance) (edges []carp.Link, arcs []carp.Link) {
	edges = append(edges, inst.Graph.Edges...)
	arcs = append(arcs, inst.Graph.Arcs...)
	for _, s := range inst.Catalog.Services() {
		l := carp.Link{From: s.From, To: s.To, Cost: s.TravelCost}
		switch s.Kind {
		case carp.KindEdge:
			edges = append(edges, l)
		case carp.KindArc:
			arcs = append(arcs, l)
		}
	}
	return edges, arcs
}

// components returns the number of connected components of the network.
// Arcs are followed in both directions so the count is that of the weakly
// connected components.
func components(index *carp.VertexIndex, edges []carp.Link, arcs []carp.Link) int {
	n := index.Len()
	adj := make([][]int, n)
	for _, links := range [][]carp.Link{edges, arcs} {
		for _, l := range links {
			u, okU := index.Index(l.From)
			v, okV := index.Index(l.To)
			if !okU || !okV {
				continue
			}
			adj[u] = append(adj[u], v)
			adj[v] = append(adj[v], u)
		}
	}

	visited := sparsesets.New(n)
	count := 0
	queue := make([]int, 0, n)
	for src := 0; src < n; src++ {
		if visited.Contains(src) {
			continue
		}
		count++
		visited.Insert(src)
		queue = append(queue[:0], src)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if !visited.Contains(v) {
					visited.Insert(v)
					queue = append(queue, v)
				}
			}
		}
	}
	return count
}

// degrees returns the minimum and maximum degree of the vertices. The degree
// of a vertex is its number of incident edges plus its in and out arcs.
func degrees(index *carp.VertexIndex, edges []carp.Link, arcs []carp.Link) (int, int) {
	n := index.Len()
	if n == 0 {
		return 0, 0
	}
	deg := make([]int, n)
	for _, links := range [][]carp.Link{edges, arcs} {
		for _, l := range links {
			if u, ok := index.Index(l.From); ok {
				deg[u]++
			}
			if v, ok := index.Index(l.To); ok {
				deg[v]++
			}
		}
	}

	minDeg, maxDeg := deg[0], deg[0]
	for _, d := range deg[1:] {
		minDeg = min(minDeg, d)
		maxDeg = max(maxDeg, d)
	}
	return minDeg, maxDeg
}

// distances returns the average shortest path length over all ordered pairs
// of distinct reachable vertices, and the diameter (largest finite distance).
func distances(sp *carp.ShortestPaths) (float64, int) {
	total, count, diameter := 0, 0, 0
	for i := 0; i < sp.Len(); i++ {
		for j := 0; j < sp.Len(); j++ {
			d := sp.Dist(i, j)
			if d == carp.Inf {
				continue
			}
			diameter = max(diameter, d)
			if i != j {
				total += d
				count++
			}
		}
	}
	if count == 0 {
		return 0, diameter
	}
	return float64(total) / float64(count), diameter
}

// betweenness counts, for each vertex, the number of reconstructed shortest
// paths in which it appears as an intermediate vertex. Vertices that are never
// intermediate are absent from the map.
func betweenness(sp *carp.ShortestPaths) map[carp.Vertex]int {
	counts := map[carp.Vertex]int{}
	for s := 0; s < sp.Len(); s++ {
		for t := 0; t < sp.Len(); t++ {
			if s == t || sp.Dist(s, t) == carp.Inf {
				continue
			}
			path, ok := sp.Path(s, t)
			if !ok || len(path) < 3 {
				continue
			}
			for _, v := range path[1 : len(path)-1] {
				counts[sp.Index.Vertex(v)]++
			}
		}
	}
	return counts
}
