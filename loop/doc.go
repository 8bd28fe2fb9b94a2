// Package loop walks the single pipe cycle that passes through a grid's
// start cell.
//
// Two independent walks are provided and must agree on membership:
//
//   - Distances runs a breadth-first search from the start over mutually
//     linked pipes. The start expands both ways around the cycle at once, so
//     each cell's depth is the shorter way round and the deepest cell is the
//     farthest point.
//   - Trace follows the cycle one way only, always leaving a cell by the
//     connection it did not arrive through, until it is back at the start.
//
// Walk runs both, cross-checks them and returns a Loop holding the ordered
// path, the membership Set and the per-cell distances.
//
// Both walks are bounded by Rows×Cols steps; a cycle that dead-ends, branches
// or fails to close is reported as ErrLoopOpen.
package loop
