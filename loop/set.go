package loop

import (
	"maps"
	"slices"

	"github.com/katalvlaran/pipeloop/gridgraph"
)

// Set is an immutable membership set of loop coordinates.
// The zero value is an empty set.
type Set struct {
	m map[gridgraph.Coordinate]struct{}
}

// NewSet builds a Set from cells. Duplicates collapse.
func NewSet(cells []gridgraph.Coordinate) Set {
	m := make(map[gridgraph.Coordinate]struct{}, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return Set{m: m}
}

// Contains reports whether c is on the loop.
func (s Set) Contains(c gridgraph.Coordinate) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of loop cells.
func (s Set) Len() int {
	return len(s.m)
}

// Sorted returns the members in row-major order.
func (s Set) Sorted() []gridgraph.Coordinate {
	return slices.SortedFunc(maps.Keys(s.m), gridgraph.Coordinate.Compare)
}

// Equal reports whether both sets hold exactly the same cells.
func (s Set) Equal(o Set) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if _, ok := o.m[c]; !ok {
			return false
		}
	}
	return true
}
