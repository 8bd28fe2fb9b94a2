package loop

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pipeloop/bfs"
	"github.com/katalvlaran/pipeloop/gridgraph"
)

// Loop is the cycle through a grid's start, as found by Walk.
type Loop struct {
	// Path is the one-way walk order starting at the start cell.
	Path []gridgraph.Coordinate
	// Distance maps each loop cell to its shortest step count from the start.
	Distance map[gridgraph.Coordinate]int
	// Farthest is the largest value in Distance.
	Farthest int
	// Members is the loop's membership set.
	Members Set
}

// Len returns the number of cells on the loop.
func (l *Loop) Len() int {
	return len(l.Path)
}

// Distances expands from g.Start both ways around the cycle at once and
// returns every loop cell's distance and the largest of them.
// Each visited cell must have exactly two links, and the search is bounded
// by Rows×Cols levels; otherwise ErrLoopOpen is returned.
func Distances(ctx context.Context, g *gridgraph.Grid) (map[gridgraph.Coordinate]int, int, error) {
	if !g.Resolved() {
		return nil, 0, ErrUnresolved
	}
	linked := func(c gridgraph.Coordinate) ([]gridgraph.Coordinate, error) {
		links := g.Linked(c)
		if len(links) != 2 {
			return nil, fmt.Errorf("%w: %v has %d links", ErrLoopOpen, c, len(links))
		}
		return links, nil
	}
	res, err := bfs.BFS(g.Start, linked,
		bfs.WithContext[gridgraph.Coordinate](ctx),
		bfs.WithMaxDepth[gridgraph.Coordinate](g.Rows*g.Cols),
	)
	if err != nil {
		return nil, 0, err
	}
	if res.Truncated {
		return nil, 0, fmt.Errorf("%w: walk exceeded %d steps", ErrLoopOpen, g.Rows*g.Cols)
	}
	if len(res.Order) < 4 {
		return nil, 0, fmt.Errorf("%w: degenerate cycle of %d cells", ErrLoopOpen, len(res.Order))
	}
	return res.Depth, res.MaxDepth(), nil
}

// FarthestDistance returns the number of steps from the start to the point
// of the loop farthest from it.
func FarthestDistance(ctx context.Context, g *gridgraph.Grid) (int, error) {
	_, far, err := Distances(ctx, g)
	return far, err
}

// Walk runs both Trace and Distances and checks that they visit the same
// cells, returning ErrWalkMismatch if not.
func Walk(ctx context.Context, g *gridgraph.Grid) (*Loop, error) {
	path, err := Trace(g)
	if err != nil {
		return nil, err
	}
	dist, far, err := Distances(ctx, g)
	if err != nil {
		return nil, err
	}
	members := NewSet(path)
	if len(dist) != members.Len() {
		return nil, fmt.Errorf("%w: trace has %d cells, search has %d", ErrWalkMismatch, members.Len(), len(dist))
	}
	for c := range dist {
		if !members.Contains(c) {
			return nil, fmt.Errorf("%w: %v found only by search", ErrWalkMismatch, c)
		}
	}
	return &Loop{Path: path, Distance: dist, Farthest: far, Members: members}, nil
}
