package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
)

var (
	// ErrUnresolved indicates a walk was requested on a grid whose start is not typed.
	ErrUnresolved = fmt.Errorf("%w: start orientation not resolved", gridgraph.ErrInconsistentTopology)
	// ErrLoopOpen indicates the pipes from the start do not close into a simple cycle.
	ErrLoopOpen = fmt.Errorf("%w: loop does not close on the start", gridgraph.ErrInconsistentTopology)
	// ErrWalkMismatch indicates the one-way and two-way walks disagree on membership.
	ErrWalkMismatch = fmt.Errorf("%w: loop walks disagree", gridgraph.ErrInconsistentTopology)
)
