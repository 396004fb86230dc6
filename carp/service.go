package carp

// Kind is the type of element a service is attached to.
type Kind int8

const (
	KindNode Kind = iota
	KindEdge
	KindArc
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Service is a required node, edge, or arc. Performing the service moves the
// vehicle from From to To (the same vertex for node services) and costs Cost,
// independently of any travel.
type Service struct {
	ID     int
	Kind   Kind
	From   Vertex
	To     Vertex
	Demand int
	Cost   int

	// TravelCost is the cost of traversing the required edge or arc without
	// servicing it. It is ignored for node services.
	TravelCost int
}

// Segments returns the travel segments contributed by the service's element:
// two for an edge, one for an arc, and none for a node.
func (s Service) Segments() []Link {
	switch s.Kind {
	case KindEdge:
		return []Link{
			{From: s.From, To: s.To, Cost: s.TravelCost},
			{From: s.To, To: s.From, Cost: s.TravelCost},
		}
	case KindArc:
		return []Link{{From: s.From, To: s.To, Cost: s.TravelCost}}
	default:
		return nil
	}
}
