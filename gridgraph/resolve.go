package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipe"
)

// ResolveStart infers the start cell's pipe type. A neighbour counts only if
// it holds a pipe that connects back towards start; exactly two neighbours
// must pass and their directions must match one of the six pipe types.
// pipes must not already contain start.
// Complexity: O(1).
func ResolveStart(pipes map[Coordinate]pipe.PipeType, start Coordinate) (pipe.PipeType, error) {
	var set pipe.Direction
	for _, d := range pipe.Cardinals {
		if n, ok := pipes[start.Step(d)]; ok && n.Connects(d.Opposite()) {
			set |= d
		}
	}
	if set.Count() != 2 {
		return 0, fmt.Errorf("%w: %d reciprocal neighbours at %v (%v), want 2",
			ErrStartUnresolved, set.Count(), start, set)
	}
	p, ok := pipe.FromDirections(set)
	if !ok {
		return 0, fmt.Errorf("%w: no pipe connects %v", ErrStartUnresolved, set)
	}
	return p, nil
}

// Resolve types the start cell and inserts it into the mapping. It is the
// grid's only mutation and fails with ErrAlreadyResolved on a second call.
func (g *Grid) Resolve() error {
	if g.resolved {
		return ErrAlreadyResolved
	}
	p, err := ResolveStart(g.pipes, g.Start)
	if err != nil {
		return err
	}
	g.pipes[g.Start] = p
	g.resolved = true
	return nil
}
