package carp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rhartert/carp-ls/carp/routes"
	"gopkg.in/yaml.v3"
)

// LegKind distinguishes deadheading from servicing.
type LegKind string

const (
	LegDeadhead LegKind = "D"
	LegService  LegKind = "S"
)

// Leg is one step of a trip. Service is 0 for deadhead legs.
type Leg struct {
	Kind    LegKind `yaml:"kind"`
	Service int     `yaml:"service"`
	From    Vertex  `yaml:"from"`
	To      Vertex  `yaml:"to"`
	Cost    int     `yaml:"cost"`
}

// Trip is the encoded route of one vehicle. Its first leg is a zero-cost
// deadhead marking the departure from the depot.
type Trip struct {
	Load int   `yaml:"load"`
	Cost int   `yaml:"cost"`
	Legs []Leg `yaml:"legs"`
}

// Solution is the encoded set of routes.
type Solution struct {
	Instance  string `yaml:"instance"`
	TotalCost int    `yaml:"total_cost"`
	Vehicles  int    `yaml:"vehicles"`
	Trips     []Trip `yaml:"trips"`
}

// Clocks reports the wall-clock time spent to solve an instance and the time
// at which the best solution was found, both in nanoseconds.
type Clocks struct {
	Total int64 `yaml:"total"`
	Best  int64 `yaml:"best"`
}

// Encode converts the routes into trips. Each trip leaves the depot, deadheads
// to a service's origin when the vehicle is not already there, performs the
// service, and finally deadheads back to the depot. It returns an error
// wrapping ErrUnreachable if a deadhead leg has no path, and ErrUnknownService
// if a route contains a service that is not in the catalog.
func Encode(p *Problem, seqs []*routes.Sequence) (*Solution, error) {
	catalog := p.Instance.Catalog
	depot := p.Instance.Graph.Depot
	sol := &Solution{
		Instance: p.Instance.Name,
		Vehicles: len(seqs),
		Trips:    make([]Trip, 0, len(seqs)),
	}

	for r, seq := range seqs {
		trip := Trip{Legs: []Leg{{Kind: LegDeadhead, From: depot, To: depot}}}
		current := p.depot

		deadhead := func(to int) error {
			d := p.Paths.Dist(current, to)
			if d == Inf {
				return fmt.Errorf("route %d: no path from %q to %q: %w",
					r, p.Paths.Index.Vertex(current), p.Paths.Index.Vertex(to), ErrUnreachable)
			}
			trip.Legs = append(trip.Legs, Leg{
				Kind: LegDeadhead,
				From: p.Paths.Index.Vertex(current),
				To:   p.Paths.Index.Vertex(to),
				Cost: d,
			})
			trip.Cost += d
			return nil
		}

		for _, id := range seq.IDs() {
			pos, ok := catalog.Position(id)
			if !ok {
				return nil, fmt.Errorf("route %d: service %d: %w", r, id, ErrUnknownService)
			}
			if current != p.from[pos] {
				if err := deadhead(p.from[pos]); err != nil {
					return nil, err
				}
			}
			s := catalog.At(pos)
			trip.Legs = append(trip.Legs, Leg{
				Kind:    LegService,
				Service: s.ID,
				From:    s.From,
				To:      s.To,
				Cost:    s.Cost,
			})
			trip.Cost += s.Cost
			trip.Load += s.Demand
			current = p.to[pos]
		}
		if current != p.depot {
			if err := deadhead(p.depot); err != nil {
				return nil, err
			}
		}

		sol.TotalCost += trip.Cost
		sol.Trips = append(sol.Trips, trip)
	}

	return sol, nil
}

// WriteText writes the solution in the textual format of the CARP benchmark:
// total cost, number of vehicles, clocks, then one line per trip made of the
// depot, day, trip number, load, cost, number of legs, and the legs. Clocks
// are written as integer nanoseconds of wall-clock time.
func (s *Solution) WriteText(w io.Writer, clocks Clocks) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n%d\n%d\n\n", s.TotalCost, s.Vehicles, clocks.Total, clocks.Best)
	for i, t := range s.Trips {
		fmt.Fprintf(bw, "0 1 %d %d %d %d", i+1, t.Load, t.Cost, len(t.Legs))
		for _, l := range t.Legs {
			fmt.Fprintf(bw, " (%s %d,%s,%s)", l.Kind, l.Service, l.From, l.To)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteYAML writes the solution and its clocks as a YAML document.
func (s *Solution) WriteYAML(w io.Writer, clocks Clocks) error {
	doc := struct {
		Solution `yaml:",inline"`
		Clocks   Clocks `yaml:"clocks"`
	}{*s, clocks}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding solution: %w", err)
	}
	return enc.Close()
}
