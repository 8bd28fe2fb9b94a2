// Package gridgraph turns rows of pipe symbols into a sparse grid graph and
// resolves the orientation of the unlabeled start cell.
//
// What:
//
//   - Parse reads equal-length rows over {'.', '|', '-', 'L', 'J', '7', 'F', 'S'}
//     into a Grid: a mapping from Coordinate to pipe.PipeType plus the start
//     Coordinate and the row/column extents. Ground ('.') is absent from the
//     mapping; the start cell is recorded but not inserted.
//   - ResolveStart infers the start's pipe type from the neighbours that
//     connect back to it; Grid.Resolve inserts that type exactly once.
//   - Build is Parse followed by Resolve, producing a fully typed, closed Grid.
//   - Linked and Components expose the connectivity used by the loop walker
//     and by diagnostics.
//
// Lifecycle:
//
//	Parse → Resolve (single mutation) → read-only.
//
// Complexity:
//
//   - Parse:         O(R×C) time, O(P) memory (P = number of pipe cells).
//   - ResolveStart:  O(1).
//   - Components:    O(P) time and memory.
//
// Errors:
//
//   - ErrStructuralInput and its children (ErrEmptyGrid, ErrNonRectangular,
//     ErrMissingStart, ErrDuplicateStart, ErrUnknownSymbol) come from Parse.
//   - ErrInconsistentTopology and its children (ErrStartUnresolved,
//     ErrAlreadyResolved) come from resolution.
package gridgraph
