package carp

import (
	"context"
	"fmt"
)

// Problem is an instance compiled to index space: the shortest paths of its
// network together with the dense endpoints of every service. Problems are
// read-only and can be shared by the construction and improvement phases.
type Problem struct {
	Instance *Instance
	Paths    *ShortestPaths

	depot int

	// Dense service attributes indexed by catalog position.
	from   []int
	to     []int
	cost   []int
	demand []int
}

// NewProblem compiles the instance on the given shortest paths. It returns an
// error if the depot or a service endpoint is not part of the paths' index.
func NewProblem(inst *Instance, sp *ShortestPaths) (*Problem, error) {
	depot, ok := sp.Index.Index(inst.Graph.Depot)
	if !ok {
		return nil, fmt.Errorf("depot %q: %w", inst.Graph.Depot, ErrUnknownVertex)
	}

	n := inst.Catalog.Len()
	p := &Problem{
		Instance: inst,
		Paths:    sp,
		depot:    depot,
		from:     make([]int, n),
		to:       make([]int, n),
		cost:     make([]int, n),
		demand:   make([]int, n),
	}
	for i, s := range inst.Catalog.Services() {
		u, okU := sp.Index.Index(s.From)
		v, okV := sp.Index.Index(s.To)
		if !okU || !okV {
			return nil, fmt.Errorf("service %d: %w", s.ID, ErrUnknownVertex)
		}
		p.from[i] = u
		p.to[i] = v
		p.cost[i] = s.Cost
		p.demand[i] = s.Demand
	}
	return p, nil
}

// Depot returns the index of the depot.
func (p *Problem) Depot() int {
	return p.depot
}

// Capacity returns the vehicle capacity.
func (p *Problem) Capacity() int {
	return p.Instance.Capacity
}

// Demand returns the demand of the service with the given ID, or 0 if the
// service is unknown.
func (p *Problem) Demand(id int) int {
	i, ok := p.Instance.Catalog.Position(id)
	if !ok {
		return 0
	}
	return p.demand[i]
}

// Load returns the total demand of the given services.
func (p *Problem) Load(ids []int) int {
	load := 0
	for _, id := range ids {
		load += p.Demand(id)
	}
	return load
}

// Cost returns the cost of a vehicle leaving the depot, performing the given
// services in order, and returning to the depot. Deadheading to a service is
// only paid when the vehicle is not already at the service's origin. The cost
// is Inf if a leg is unreachable or a service is unknown.
func (p *Problem) Cost(ids []int) int {
	total := 0
	current := p.depot
	for _, id := range ids {
		i, ok := p.Instance.Catalog.Position(id)
		if !ok {
			return Inf
		}
		if current != p.from[i] {
			total = addCost(total, p.Paths.Dist(current, p.from[i]))
		}
		total = addCost(total, p.cost[i])
		current = p.to[i]
	}
	if current != p.depot {
		total = addCost(total, p.Paths.Dist(current, p.depot))
	}
	return total
}

// exhausted returns true if the context is done or if maxMoves moves have
// already been accepted. A non-positive maxMoves means no limit on moves.
func exhausted(ctx context.Context, moves int, maxMoves int) bool {
	if maxMoves > 0 && moves >= maxMoves {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
