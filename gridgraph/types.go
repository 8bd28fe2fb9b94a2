package gridgraph

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipe"
)

// Coordinate addresses a cell by row and column. Coordinates outside the grid
// are valid values (the classifier's ray starts at column -1).
type Coordinate struct {
	Row, Col int
}

// Step returns the coordinate one cell away in direction d.
func (c Coordinate) Step(d pipe.Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Compare orders coordinates row-major: by Row, then by Col.
func (c Coordinate) Compare(o Coordinate) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is the sparse pipe mapping of a rectangular text grid.
// Rows and Cols are the extents; Start is the start marker's position.
// After Resolve the grid is read-only and safe for concurrent readers.
type Grid struct {
	Rows, Cols int
	Start      Coordinate

	pipes    map[Coordinate]pipe.PipeType
	resolved bool
}
