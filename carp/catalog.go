package carp

import "fmt"

// Catalog is the immutable list of services of an instance. Services keep the
// order in which they were given, which is the order used to generate savings.
type Catalog struct {
	services []Service
	byID     map[int]int
}

// NewCatalog returns a catalog of the given services. It returns an error if
// two services share the same ID or if a demand or cost is negative.
func NewCatalog(services []Service) (*Catalog, error) {
	c := &Catalog{
		services: make([]Service, len(services)),
		byID:     make(map[int]int, len(services)),
	}
	for i, s := range services {
		if _, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("service %d: %w", s.ID, ErrDuplicateService)
		}
		if s.Demand < 0 {
			return nil, fmt.Errorf("service %d: %w", s.ID, ErrNegativeDemand)
		}
		if s.Cost < 0 || s.TravelCost < 0 {
			return nil, fmt.Errorf("service %d: %w", s.ID, ErrNegativeCost)
		}
		c.services[i] = s
		c.byID[s.ID] = i
	}
	return c, nil
}

// Len returns the number of services.
func (c *Catalog) Len() int {
	return len(c.services)
}

// At returns the service at position i in catalog order.
func (c *Catalog) At(i int) Service {
	return c.services[i]
}

// Position returns the catalog position of the service with the given ID.
func (c *Catalog) Position(id int) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Get returns the service with the given ID.
func (c *Catalog) Get(id int) (Service, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// Services returns the services in catalog order.
//
// Important: the slice is a view on the catalog's internal structure and
// should only be used in read-only operations.
func (c *Catalog) Services() []Service {
	return c.services
}

// TotalDemand returns the sum of all service demands.
func (c *Catalog) TotalDemand() int {
	total := 0
	for _, s := range c.services {
		total += s.Demand
	}
	return total
}
