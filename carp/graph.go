package carp

import "fmt"

// Vertex identifies a node of the network. Instance files label nodes with
// arbitrary tokens, vertices are therefore kept as opaque strings.
type Vertex string

// Link is a weighted connection between two vertices. A link is either an
// undirected edge or a directed arc depending on the list it belongs to.
type Link struct {
	From Vertex
	To   Vertex
	Cost int
}

// Graph represents a mixed network made of undirected edges and directed arcs.
// Every vehicle starts and ends its route at the depot.
type Graph struct {
	Depot Vertex

	// Nodes lists vertices that must be part of the network even if they are
	// not incident to any link.
	Nodes []Vertex

	Edges []Link
	Arcs  []Link
}

// Segments returns the directed travel segments of the graph: each edge is
// expanded into two opposite segments while each arc yields a single one.
func (g *Graph) Segments() []Link {
	segs := make([]Link, 0, 2*len(g.Edges)+len(g.Arcs))
	for _, e := range g.Edges {
		segs = append(segs, e, Link{From: e.To, To: e.From, Cost: e.Cost})
	}
	return append(segs, g.Arcs...)
}

func (g *Graph) validate() error {
	if g.Depot == "" {
		return ErrMissingDepot
	}
	for _, l := range g.Edges {
		if l.Cost < 0 {
			return fmt.Errorf("edge (%s, %s): %w", l.From, l.To, ErrNegativeCost)
		}
	}
	for _, l := range g.Arcs {
		if l.Cost < 0 {
			return fmt.Errorf("arc (%s, %s): %w", l.From, l.To, ErrNegativeCost)
		}
	}
	return nil
}
