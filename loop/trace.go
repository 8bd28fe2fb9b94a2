package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
)

// Trace walks the cycle one way from g.Start and returns the cells in walk
// order, starting with g.Start and ending with the cell just before the walk
// returns to it. From each cell it takes the linked neighbour it did not
// arrive from; at the start it takes the first of the two links.
//
// Returns ErrUnresolved before resolution and ErrLoopOpen if a cell does not
// have exactly two links, a cell repeats, or Rows×Cols steps pass without
// closing.
// Complexity: O(L) for a loop of length L.
func Trace(g *gridgraph.Grid) ([]gridgraph.Coordinate, error) {
	if !g.Resolved() {
		return nil, ErrUnresolved
	}
	limit := g.Rows * g.Cols
	path := []gridgraph.Coordinate{g.Start}
	seen := map[gridgraph.Coordinate]bool{g.Start: true}

	prev, cur := g.Start, g.Start
	for step := 0; step < limit; step++ {
		links := g.Linked(cur)
		if len(links) != 2 {
			return nil, fmt.Errorf("%w: %v has %d links", ErrLoopOpen, cur, len(links))
		}
		next := links[0]
		if next == prev && cur != g.Start {
			next = links[1]
		}
		if next == g.Start {
			if len(path) < 3 {
				// two cells pointing at each other cannot form a pipe loop
				return nil, fmt.Errorf("%w: degenerate cycle at %v", ErrLoopOpen, cur)
			}
			return path, nil
		}
		if seen[next] {
			return nil, fmt.Errorf("%w: %v revisited", ErrLoopOpen, next)
		}
		seen[next] = true
		path = append(path, next)
		prev, cur = cur, next
	}
	return nil, fmt.Errorf("%w: no return to %v within %d steps", ErrLoopOpen, g.Start, limit)
}
