package carp

// Edge represents a directed travel segment between two dense vertex indices.
type Edge struct {
	From int
	To   int
	Cost int
}

// Digraph is the travel network in index space. Parallel segments are kept as
// they are, algorithms resolve them by taking the cheapest one.
type Digraph struct {
	Index *VertexIndex
	Nexts [][]int
	Edges []Edge
}

// NewDigraph maps the given segments on the vertex index. Segments with an
// endpoint outside the index are ignored.
func NewDigraph(index *VertexIndex, segments []Link) *Digraph {
	dg := &Digraph{
		Index: index,
		Nexts: make([][]int, index.Len()),
		Edges: make([]Edge, 0, len(segments)),
	}
	for _, s := range segments {
		u, okU := index.Index(s.From)
		v, okV := index.Index(s.To)
		if !okU || !okV {
			continue
		}
		dg.Nexts[u] = append(dg.Nexts[u], len(dg.Edges))
		dg.Edges = append(dg.Edges, Edge{From: u, To: v, Cost: s.Cost})
	}
	return dg
}

// NumNodes returns the number of vertices of the digraph.
func (dg *Digraph) NumNodes() int {
	return len(dg.Nexts)
}
