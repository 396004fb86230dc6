package carp

import "fmt"

// Instance is a fully parsed CARP instance.
type Instance struct {
	Name     string
	Graph    *Graph
	Catalog  *Catalog
	Capacity int
}

// NewInstance validates its inputs and returns a new instance. Every service
// must fit in a single vehicle.
func NewInstance(name string, g *Graph, services []Service, capacity int) (*Instance, error) {
	if g == nil {
		return nil, fmt.Errorf("instance %q: graph is nil", name)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("instance %q: %w, got %d", name, ErrInvalidCapacity, capacity)
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("instance %q: %w", name, err)
	}
	catalog, err := NewCatalog(services)
	if err != nil {
		return nil, fmt.Errorf("instance %q: %w", name, err)
	}
	for _, s := range services {
		if s.Demand > capacity {
			return nil, fmt.Errorf("instance %q: service %d: demand %d > %d: %w", name, s.ID, s.Demand, capacity, ErrCapacityExceeded)
		}
	}
	return &Instance{
		Name:     name,
		Graph:    g,
		Catalog:  catalog,
		Capacity: capacity,
	}, nil
}

// Vertices returns the vertex set of the instance: the depot followed by
// every vertex appearing in the graph or in a service, in order of first
// appearance.
func (inst *Instance) Vertices() []Vertex {
	seen := map[Vertex]bool{}
	vertices := []Vertex{}
	add := func(v Vertex) {
		if !seen[v] {
			seen[v] = true
			vertices = append(vertices, v)
		}
	}

	add(inst.Graph.Depot)
	for _, v := range inst.Graph.Nodes {
		add(v)
	}
	for _, l := range inst.Graph.Edges {
		add(l.From)
		add(l.To)
	}
	for _, l := range inst.Graph.Arcs {
		add(l.From)
		add(l.To)
	}
	for _, s := range inst.Catalog.Services() {
		add(s.From)
		add(s.To)
	}
	return vertices
}

// Segments returns all the directed travel segments of the instance, those of
// the graph followed by those of the required edges and arcs.
func (inst *Instance) Segments() []Link {
	segs := inst.Graph.Segments()
	for _, s := range inst.Catalog.Services() {
		segs = append(segs, s.Segments()...)
	}
	return segs
}
