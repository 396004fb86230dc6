package carp

// VertexIndex is a stable mapping between vertices and dense indices in
// [0, Len()). All the algorithms operate on indices, vertices are only used
// at the boundaries.
type VertexIndex struct {
	ids      map[Vertex]int
	vertices []Vertex
}

// NewVertexIndex indexes the vertices in order. Duplicates are ignored.
func NewVertexIndex(vertices []Vertex) *VertexIndex {
	vi := &VertexIndex{
		ids:      make(map[Vertex]int, len(vertices)),
		vertices: make([]Vertex, 0, len(vertices)),
	}
	for _, v := range vertices {
		if _, ok := vi.ids[v]; ok {
			continue
		}
		vi.ids[v] = len(vi.vertices)
		vi.vertices = append(vi.vertices, v)
	}
	return vi
}

func (vi *VertexIndex) Len() int {
	return len(vi.vertices)
}

// Index returns the index of vertex v and whether v is indexed.
func (vi *VertexIndex) Index(v Vertex) (int, bool) {
	i, ok := vi.ids[v]
	return i, ok
}

// Vertex returns the vertex at index i.
func (vi *VertexIndex) Vertex(i int) Vertex {
	return vi.vertices[i]
}
