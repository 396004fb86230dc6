package carp

// transfer is a quantity of demand moved from one route to another.
type transfer struct {
	from   int
	to     int
	demand int
}

// RouteLoads tracks the load of each route of a solution under construction
// against the vehicle capacity. Transfers are tentative until Commit is
// called: Undo reverts every transfer applied since the last commit.
type RouteLoads struct {
	capacity int
	loads    []int
	pending  []transfer
}

// NewRouteLoads returns the loads of the given routes, each route being a list
// of service IDs.
func NewRouteLoads(p *Problem, routes [][]int) *RouteLoads {
	rl := &RouteLoads{
		capacity: p.Capacity(),
		loads:    make([]int, len(routes)),
	}
	for r, ids := range routes {
		rl.loads[r] = p.Load(ids)
	}
	return rl
}

// Load returns the current load of the route.
func (rl *RouteLoads) Load(route int) int {
	return rl.loads[route]
}

// CanMove returns true if moving demand from route from to route to keeps the
// receiving route within capacity.
func (rl *RouteLoads) CanMove(from int, to int, demand int) bool {
	return from != to && rl.loads[to]+demand <= rl.capacity
}

// Move tentatively transfers demand from route from to route to. It returns
// false and leaves the loads unchanged if the transfer is not allowed.
func (rl *RouteLoads) Move(from int, to int, demand int) bool {
	if !rl.CanMove(from, to, demand) {
		return false
	}
	rl.loads[from] -= demand
	rl.loads[to] += demand
	rl.pending = append(rl.pending, transfer{from, to, demand})
	return true
}

// Undo reverts the transfers applied since the last call to Commit, most
// recent first.
func (rl *RouteLoads) Undo() {
	for i := len(rl.pending) - 1; i >= 0; i-- {
		t := rl.pending[i]
		rl.loads[t.from] += t.demand
		rl.loads[t.to] -= t.demand
	}
	rl.pending = rl.pending[:0]
}

// Commit makes the pending transfers permanent.
func (rl *RouteLoads) Commit() {
	rl.pending = rl.pending[:0]
}
