// Package routes provides the sequence of services performed by a vehicle and
// the operations used to build and improve it.
package routes

import (
	"strconv"
	"strings"
)

// Sequence represents the ordered services performed by one vehicle.
//
// A Sequence is a slice of service IDs. It respects the following invariants:
//
//   - Unique services: a service ID appears at most once
//   - Non-empty: operations never remove the last service of a sequence
//
// All operations on Sequence guarantee that these invariants are maintained
// as long as the IDs given to New and Append are unique.
type Sequence struct {
	ids []int
}

// New instantiates and returns a new Sequence containing the given IDs.
func New(ids ...int) *Sequence {
	s := &Sequence{ids: make([]int, len(ids))}
	copy(s.ids, ids)
	return s
}

// Join returns a new sequence made of the services of each given sequence, in
// order.
func Join(seqs ...*Sequence) *Sequence {
	n := 0
	for _, s := range seqs {
		n += s.Len()
	}
	joined := &Sequence{ids: make([]int, 0, n)}
	for _, s := range seqs {
		joined.ids = append(joined.ids, s.ids...)
	}
	return joined
}

// Len returns the number of services in the sequence.
func (s *Sequence) Len() int {
	return len(s.ids)
}

// At returns the service ID at the specified position.
func (s *Sequence) At(pos int) int {
	return s.ids[pos]
}

// IDs returns the service IDs of the sequence in order.
//
// Important: the slice is a view on the sequence's internal structure and
// should only be used in read-only operations. Modifying the slice will most
// likely results in incorrect behavior.
func (s *Sequence) IDs() []int {
	return s.ids
}

// Clone returns a deep copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	return New(s.ids...)
}

// Reversed returns a copy of the sequence in reverse order.
func (s *Sequence) Reversed() *Sequence {
	r := s.Clone()
	r.Reverse(0, r.Len()-1)
	return r
}

// CanReverse returns true if the Reverse operation can be performed on the
// segment [i, j].
func (s *Sequence) CanReverse(i int, j int) bool {
	return 0 <= i && i < j && j < len(s.ids)
}

// Reverse reverses the order of the services between positions i and j, both
// included. It returns true if the operation succeeded or false if positions
// do not delimit a valid segment.
func (s *Sequence) Reverse(i int, j int) bool {
	if !s.CanReverse(i, j) {
		return false
	}
	for ; i < j; i, j = i+1, j-1 {
		s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
	}
	return true
}

// CanRemove returns true if the service at the specified position can be
// removed without emptying the sequence.
func (s *Sequence) CanRemove(pos int) bool {
	return 0 <= pos && pos < len(s.ids) && len(s.ids) > 1
}

// Remove removes the service at the specified position. Subsequent services
// are shifted one position to the left. It returns true if the operation
// succeeded or false if the operation would violate one of the invariants.
func (s *Sequence) Remove(pos int) bool {
	if !s.CanRemove(pos) {
		return false
	}
	s.ids = append(s.ids[:pos], s.ids[pos+1:]...)
	return true
}

// Append adds the service at the end of the sequence.
func (s *Sequence) Append(id int) {
	s.ids = append(s.ids, id)
}

// Position returns the position of the service in the sequence or -1 if the
// service is not part of it.
func (s *Sequence) Position(id int) int {
	for i, x := range s.ids {
		if x == id {
			return i
		}
	}
	return -1
}

// String returns a string representation of the sequence as service IDs
// separated by " -> ". For example: "3 -> 1 -> 2".
func (s *Sequence) String() string {
	sb := strings.Builder{}
	for i, id := range s.ids {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}
