// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/gridgraph"
)

// TestComponents_LoopOnly: a clean loop is a single component.
func TestComponents_LoopOnly(t *testing.T) {
	g, err := gridgraph.Build(square)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 8)
}

// TestComponents_Junk separates the loop from surrounding junk pipes.
//
// Grid:
//
//	-L|F7
//	7S-7|
//	L|7||
//	-L-J|
//	L|-JF
//
// The 8-cell loop through S is one component; every other pipe falls into
// smaller components that never reach S.
func TestComponents_Junk(t *testing.T) {
	g, err := gridgraph.Build([]string{
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	})
	require.NoError(t, err)

	comps := g.Components()
	total := 0
	loopComps := 0
	for _, comp := range comps {
		total += len(comp)
		for _, c := range comp {
			if c == g.Start {
				loopComps++
				assert.Len(t, comp, 8)
			}
		}
	}
	assert.Equal(t, 1, loopComps)
	assert.Equal(t, g.Len(), total, "every pipe belongs to exactly one component")
	assert.Greater(t, len(comps), 1)
}

// TestComponents_Ordered checks components are keyed by their first cell in row-major order.
func TestComponents_Ordered(t *testing.T) {
	g, err := gridgraph.Build([]string{
		"S7.F7",
		"LJ.LJ",
	})
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, gridgraph.Coordinate{Row: 0, Col: 0}, comps[0][0])
	assert.Equal(t, gridgraph.Coordinate{Row: 0, Col: 3}, comps[1][0])

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{4, 4}, sizes)
}
