// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	neighbors NeighborFunc[K]
	opts      Options[K]
	ctx       context.Context
	queue     []queueItem[K]
	res       *Result[K]
}

// BFS runs breadth-first search from start, expanding vertices through
// neighbors and applying any number of functional Options.
// Returns ErrNilNeighbors for a nil neighbour function, ErrOptionViolation
// for bad options, ErrNeighbors wrapping neighbour-function failures, the
// context error on cancellation, or any user-supplied hook error.
// On error the partial Result explored so far is still returned.
func BFS[K comparable](start K, neighbors NeighborFunc[K], opts ...Option[K]) (*Result[K], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[K]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		res: &Result[K]{
			Depth:  make(map[K]int),
			Parent: make(map[K]K),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue records id at depth d with its parent, calls OnEnqueue,
// and adds it to the queue. The Depth entry doubles as the visited mark.
func (w *walker[K]) enqueue(id K, d int, parent *K) {
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[K]) visit(item queueItem[K]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	nbrs, err := w.neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %w", ErrNeighbors, item.id, err)
	}
	for _, nbr := range nbrs {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			w.res.Truncated = true
			continue
		}
		parent := item.id
		w.enqueue(nbr, nextDepth, &parent)
	}
	return nil
}
