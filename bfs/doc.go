// Package bfs provides a breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - The graph is described by a NeighborFunc over any comparable key, so a
//     grid coordinate, an integer index or a string ID all work unchanged.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - On a simple cycle, a search from one vertex expands both ways around the
//     ring at once, so Depth is the shorter way round and MaxDepth is the
//     distance to the antipodal vertex.
//
// Determinism
//
//	Neighbors are enqueued in the order the NeighborFunc returns them, so the
//	visit sequence is reproducible whenever that function is.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(start, func(c Cell) ([]Cell, error) { return grid.Linked(c), nil },
//	    bfs.WithContext[Cell](ctx),
//	    bfs.WithMaxDepth[Cell](limit),
//	)
//
// Errors
//
//   - ErrNilNeighbors     if the neighbor function is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors        if the neighbor function fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
