package gridgraph

import (
	"errors"
	"fmt"
)

// Error categories. Every sentinel below wraps one of them.
var (
	// ErrStructuralInput marks malformed grid text.
	ErrStructuralInput = errors.New("gridgraph: structural input error")
	// ErrInconsistentTopology marks pipes that do not form a closed loop through the start.
	ErrInconsistentTopology = errors.New("gridgraph: inconsistent topology")
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrStructuralInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrStructuralInput)
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = fmt.Errorf("%w: start marker not found", ErrStructuralInput)
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = fmt.Errorf("%w: start marker appears more than once", ErrStructuralInput)
	// ErrUnknownSymbol indicates a character outside the recognised set.
	ErrUnknownSymbol = fmt.Errorf("%w: unrecognised symbol", ErrStructuralInput)

	// ErrStartUnresolved indicates the start's reciprocal neighbours do not
	// form exactly one of the six connection pairs.
	ErrStartUnresolved = fmt.Errorf("%w: start orientation cannot be resolved", ErrInconsistentTopology)
	// ErrAlreadyResolved indicates Resolve was called on a grid whose start is already typed.
	ErrAlreadyResolved = fmt.Errorf("%w: start orientation already resolved", ErrInconsistentTopology)
)
