package carp

import (
	"testing"

	"github.com/rhartert/carp-ls/carp/routes"
)

func mustInstance(t *testing.T, g *Graph, services []Service, capacity int) *Instance {
	t.Helper()
	inst, err := NewInstance("test", g, services, capacity)
	if err != nil {
		t.Fatalf("NewInstance(): want no error, got %s", err)
	}
	return inst
}

func mustProblem(t *testing.T, inst *Instance) *Problem {
	t.Helper()
	dg := NewDigraph(NewVertexIndex(inst.Vertices()), inst.Segments())
	p, err := NewProblem(inst, FloydWarshall(dg))
	if err != nil {
		t.Fatalf("NewProblem(): want no error, got %s", err)
	}
	return p
}

// ringInstance returns an instance on the ring 0-1-2-3-0 where every edge
// costs 1 and the depot is 0. Services are node services at vertices 1, 3,
// and 2 (IDs 1, 2, and 3 respectively).
func ringInstance(t *testing.T, demands [3]int, capacity int) *Instance {
	t.Helper()
	g := &Graph{
		Depot: "0",
		Edges: []Link{
			{"0", "1", 1},
			{"1", "2", 1},
			{"2", "3", 1},
			{"3", "0", 1},
		},
	}
	services := []Service{
		{ID: 1, Kind: KindNode, From: "1", To: "1", Demand: demands[0]},
		{ID: 2, Kind: KindNode, From: "3", To: "3", Demand: demands[1]},
		{ID: 3, Kind: KindNode, From: "2", To: "2", Demand: demands[2]},
	}
	return mustInstance(t, g, services, capacity)
}

func sequences(ids ...[]int) []*routes.Sequence {
	seqs := make([]*routes.Sequence, len(ids))
	for i, r := range ids {
		seqs[i] = routes.New(r...)
	}
	return seqs
}

func sequenceIDs(seqs []*routes.Sequence) [][]int {
	ids := make([][]int, len(seqs))
	for i, s := range seqs {
		ids[i] = s.IDs()
	}
	return ids
}

func totalCost(p *Problem, seqs []*routes.Sequence) int {
	total := 0
	for _, s := range seqs {
		total = addCost(total, p.Cost(s.IDs()))
	}
	return total
}
