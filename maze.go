package pipeloop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
)

// Maze is a resolved pipe grid together with the loop through its start.
// It is immutable; all methods are safe for concurrent use.
type Maze struct {
	grid *gridgraph.Grid
	path []gridgraph.Coordinate
	opts options
}

// New parses rows, resolves the start orientation and traces the loop.
// Structural errors wrap gridgraph.ErrStructuralInput; a start that cannot
// be resolved or a loop that does not close wraps
// gridgraph.ErrInconsistentTopology.
func New(rows []string, opts ...Option) (*Maze, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := gridgraph.Build(rows)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: build grid: %w", err)
	}
	start, _ := g.PipeAt(g.Start)
	o.logger.Debug("grid resolved",
		zap.Int("rows", g.Rows),
		zap.Int("cols", g.Cols),
		zap.Int("pipes", g.Len()),
		zap.Stringer("start", g.Start),
		zap.Stringer("start_type", start),
	)

	path, err := loop.Trace(g)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: trace loop: %w", err)
	}
	o.logger.Debug("loop traced", zap.Int("length", len(path)))

	return &Maze{grid: g, path: path, opts: o}, nil
}

// Grid returns the resolved grid. Callers must not mutate it.
func (m *Maze) Grid() *gridgraph.Grid {
	return m.grid
}

// Loop returns a copy of the one-way loop path, starting at the start cell.
func (m *Maze) Loop() []gridgraph.Coordinate {
	return append([]gridgraph.Coordinate(nil), m.path...)
}

// Members returns the loop's membership set.
func (m *Maze) Members() loop.Set {
	return loop.NewSet(m.path)
}

// DistanceToFarthestPoint returns the number of steps along the loop from
// the start to the cell farthest from it, found by walking both ways at once.
func (m *Maze) DistanceToFarthestPoint(ctx context.Context) (int, error) {
	l, err := loop.Walk(ctx, m.grid)
	if err != nil {
		return 0, fmt.Errorf("pipeloop: walk loop: %w", err)
	}
	m.opts.logger.Debug("farthest point", zap.Int("distance", l.Farthest), zap.Int("length", l.Len()))
	return l.Farthest, nil
}

// Classify sorts every non-loop cell into inside and outside.
func (m *Maze) Classify(ctx context.Context) (*enclosure.Result, error) {
	res, err := enclosure.Classify(ctx, m.grid, m.Members(),
		enclosure.WithRule(m.opts.rule),
		enclosure.WithWorkers(m.opts.workers),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: classify: %w", err)
	}
	m.opts.logger.Debug("cells classified",
		zap.Stringer("rule", res.Rule),
		zap.Int("inside", res.Count()),
		zap.Int("outside", res.Outside),
	)
	return res, nil
}

// CountEnclosedCells returns the number of cells strictly inside the loop.
func (m *Maze) CountEnclosedCells(ctx context.Context) (int, error) {
	res, err := m.Classify(ctx)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}
