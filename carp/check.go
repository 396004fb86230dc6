package carp

import (
	"fmt"

	"github.com/rhartert/carp-ls/carp/routes"
	"github.com/rhartert/sparsesets"
)

// Check verifies that the routes form a valid solution of the problem: every
// service of the catalog is served by exactly one route and no route exceeds
// the vehicle capacity.
func (p *Problem) Check(seqs []*routes.Sequence) error {
	catalog := p.Instance.Catalog
	served := sparsesets.New(catalog.Len())

	for r, s := range seqs {
		for _, id := range s.IDs() {
			pos, ok := catalog.Position(id)
			if !ok {
				return fmt.Errorf("route %d: service %d: %w", r, id, ErrUnknownService)
			}
			if served.Contains(pos) {
				return fmt.Errorf("route %d: service %d: %w", r, id, ErrDuplicateService)
			}
			served.Insert(pos)
		}
		if load := p.Load(s.IDs()); load > p.Capacity() {
			return fmt.Errorf("route %d: load %d > %d: %w", r, load, p.Capacity(), ErrCapacityExceeded)
		}
	}

	if len(served.Content()) != catalog.Len() {
		for pos := 0; pos < catalog.Len(); pos++ {
			if !served.Contains(pos) {
				return fmt.Errorf("service %d: %w", catalog.At(pos).ID, ErrMissingService)
			}
		}
	}
	return nil
}
