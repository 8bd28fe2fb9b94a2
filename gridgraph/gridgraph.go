package gridgraph

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/katalvlaran/pipeloop/pipe"
)

// Parse builds a partial Grid from equal-length rows. The start cell is
// located but left out of the mapping; call Resolve (or use Build) before
// walking the loop.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, ErrMissingStart
// or ErrDuplicateStart (all wrapping ErrStructuralInput).
// Complexity: O(R×C).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	cols := utf8.RuneCountInString(rows[0])
	g := &Grid{
		Rows:  len(rows),
		Cols:  cols,
		pipes: make(map[Coordinate]pipe.PipeType),
	}
	found := false
	for r, line := range rows {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, n, cols)
		}
		c := 0
		for _, ch := range line {
			at := Coordinate{Row: r, Col: c}
			c++
			switch ch {
			case pipe.Ground:
				continue
			case pipe.StartMarker:
				if found {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, g.Start, at)
				}
				g.Start, found = at, true
				continue
			}
			p, ok := pipe.FromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, ch, at)
			}
			g.pipes[at] = p
		}
	}
	if !found {
		return nil, ErrMissingStart
	}

	return g, nil
}

// Build parses rows and resolves the start orientation, returning a fully
// typed Grid.
func Build(rows []string) (*Grid, error) {
	g, err := Parse(rows)
	if err != nil {
		return nil, err
	}
	if err = g.Resolve(); err != nil {
		return nil, err
	}
	return g, nil
}

// InBounds reports whether c lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// PipeAt returns the pipe at c. Ground, out-of-bounds cells and an unresolved
// start report false.
func (g *Grid) PipeAt(c Coordinate) (pipe.PipeType, bool) {
	p, ok := g.pipes[c]
	return p, ok
}

// Resolved reports whether the start cell has been typed.
func (g *Grid) Resolved() bool {
	return g.resolved
}

// Len returns the number of pipe cells in the mapping.
func (g *Grid) Len() int {
	return len(g.pipes)
}

// Cells returns every pipe coordinate in row-major order.
// Complexity: O(P log P).
func (g *Grid) Cells() []Coordinate {
	return slices.SortedFunc(maps.Keys(g.pipes), Coordinate.Compare)
}

// Linked returns the neighbours of c that c connects to and that connect
// back to c, in Up, Down, Left, Right order. A loop cell always has exactly
// two; a dangling end has fewer.
func (g *Grid) Linked(c Coordinate) []Coordinate {
	p, ok := g.pipes[c]
	if !ok {
		return nil
	}
	out := make([]Coordinate, 0, 2)
	for _, d := range pipe.Cardinals {
		if !p.Connects(d) {
			continue
		}
		n := c.Step(d)
		if q, ok := g.pipes[n]; ok && q.Connects(d.Opposite()) {
			out = append(out, n)
		}
	}
	return out
}
