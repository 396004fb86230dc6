package carp

import (
	"cmp"
	"slices"

	"github.com/rhartert/carp-ls/carp/routes"
	"github.com/rhartert/sparsesets"
)

// Route is a capacity-feasible sequence of services together with its cached
// load and the endpoints used to merge it with other routes.
type Route struct {
	Services *routes.Sequence
	Demand   int

	// Start is the origin of the first service and End the destination of
	// the last one.
	Start Vertex
	End   Vertex
}

// saving is the estimated gain of serving the services at catalog positions
// a and b with the same vehicle.
type saving struct {
	a     int
	b     int
	value int
}

// ClarkeWright builds an initial set of routes with the savings heuristic.
//
// Each service starts in its own route. Pairs of services are then considered
// by decreasing savings, where the saving of services i and j is
//
//	dist(depot, i.From) + dist(depot, j.From) - dist(i.From, j.From).
//
// Ties keep the catalog order in which pairs are generated. The routes of both
// services are merged if they share an endpoint and their combined demand fits
// in a vehicle. Pairs involving an unreachable vertex are not considered.
func ClarkeWright(p *Problem) []*Route {
	catalog := p.Instance.Catalog
	n := catalog.Len()

	// Routes are never modified once created. A merge appends a new route to
	// the arena and repoints the services of both merged routes to it.
	arena := make([]Route, 0, 2*n)
	owner := make([]int, n)
	for i, s := range catalog.Services() {
		owner[i] = len(arena)
		arena = append(arena, Route{
			Services: routes.New(s.ID),
			Demand:   s.Demand,
			Start:    s.From,
			End:      s.To,
		})
	}

	for _, s := range computeSavings(p) {
		ra, rb := owner[s.a], owner[s.b]
		if ra == rb {
			continue
		}
		merged, ok := mergeRoutes(&arena[ra], &arena[rb])
		if !ok || merged.Demand > p.Capacity() {
			continue
		}

		arena = append(arena, merged)
		for _, id := range merged.Services.IDs() {
			pos, _ := catalog.Position(id)
			owner[pos] = len(arena) - 1
		}
	}

	live := sparsesets.New(len(arena))
	for _, r := range owner {
		if !live.Contains(r) {
			live.Insert(r)
		}
	}
	ids := slices.Clone(live.Content())
	slices.Sort(ids)

	result := make([]*Route, len(ids))
	for i, r := range ids {
		result[i] = &arena[r]
	}
	return result
}

func computeSavings(p *Problem) []saving {
	n := len(p.from)
	savings := make([]saving, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		d0a := p.Paths.Dist(p.depot, p.from[a])
		if d0a == Inf {
			continue
		}
		for b := a + 1; b < n; b++ {
			d0b := p.Paths.Dist(p.depot, p.from[b])
			dab := p.Paths.Dist(p.from[a], p.from[b])
			if d0b == Inf || dab == Inf {
				continue
			}
			savings = append(savings, saving{a: a, b: b, value: d0a + d0b - dab})
		}
	}

	slices.SortStableFunc(savings, func(x, y saving) int {
		return cmp.Compare(y.value, x.value) // decreasing order
	})
	return savings
}

// mergeRoutes returns the route obtained by merging routes a and b. The first
// matching orientation is used:
//
//  1. a ends where b starts: a then b
//  2. b ends where a starts: b then a
//  3. a and b end at the same vertex: a then reversed b
//  4. a and b start at the same vertex: reversed a then b
//
// The second returned value is false if the routes share no such endpoint.
func mergeRoutes(a *Route, b *Route) (Route, bool) {
	merged := Route{Demand: a.Demand + b.Demand}
	switch {
	case a.End == b.Start:
		merged.Services = routes.Join(a.Services, b.Services)
		merged.Start, merged.End = a.Start, b.End
	case b.End == a.Start:
		merged.Services = routes.Join(b.Services, a.Services)
		merged.Start, merged.End = b.Start, a.End
	case a.End == b.End:
		merged.Services = routes.Join(a.Services, b.Services.Reversed())
		merged.Start, merged.End = a.Start, b.Start
	case a.Start == b.Start:
		merged.Services = routes.Join(a.Services.Reversed(), b.Services)
		merged.Start, merged.End = a.End, b.End
	default:
		return Route{}, false
	}
	return merged, true
}
