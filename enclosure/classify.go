package enclosure

import (
	"context"
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
)

// ErrUnresolved is returned for a grid whose start has not been typed.
var ErrUnresolved = errors.New("enclosure: grid start not resolved")

// Result is the classification of every non-loop cell.
type Result struct {
	// Inside lists enclosed cells in row-major order.
	Inside []gridgraph.Coordinate
	// Outside counts non-loop cells outside the loop.
	Outside int
	// Rule is the crossing rule that produced this result.
	Rule Rule
}

// Count returns the number of enclosed cells.
func (r *Result) Count() int {
	return len(r.Inside)
}

// Classify casts a ray along each row of g and sorts every cell that is not
// in members into inside and outside. members must be the loop set of g.
// Rows are scanned concurrently; each writes only its own slot.
func Classify(ctx context.Context, g *gridgraph.Grid, members loop.Set, opts ...Option) (*Result, error) {
	if !g.Resolved() {
		return nil, ErrUnresolved
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	inside := make([][]gridgraph.Coordinate, g.Rows)
	outside := make([]int, g.Rows)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for r := 0; r < g.Rows; r++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inside[r], outside[r] = scanRow(g, members, o.Rule, r)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Inside:  slices.Concat(inside...),
		Outside: sum(outside),
		Rule:    o.Rule,
	}, nil
}

// Count is Classify reduced to the number of enclosed cells.
func Count(ctx context.Context, g *gridgraph.Grid, members loop.Set, opts ...Option) (int, error) {
	res, err := Classify(ctx, g, members, opts...)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// scanRow walks row r left to right. crossings holds the ray count from
// column -1 up to the current column, so each cell's parity is read in O(1).
func scanRow(g *gridgraph.Grid, members loop.Set, rule Rule, r int) (inside []gridgraph.Coordinate, outside int) {
	crossings := 0
	for c := 0; c < g.Cols; c++ {
		at := gridgraph.Coordinate{Row: r, Col: c}
		if members.Contains(at) {
			if p, ok := g.PipeAt(at); ok && rule.crosses(p) {
				crossings++
			}
			continue
		}
		if crossings%2 == 1 {
			inside = append(inside, at)
		} else {
			outside++
		}
	}
	return inside, outside
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
