package loop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/internal/gridtest"
	"github.com/katalvlaran/pipeloop/loop"
)

// TestWalk_Fixtures checks loop length and farthest distance on every
// testdata grid and that both walks agree.
func TestWalk_Fixtures(t *testing.T) {
	for _, fx := range gridtest.Fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			g, err := gridgraph.Build(gridtest.Load(t, fx.Name))
			require.NoError(t, err)

			l, err := loop.Walk(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, fx.Length, l.Len())
			assert.Equal(t, fx.Length, l.Members.Len())
			assert.Equal(t, fx.Farthest, l.Farthest)
			assert.Equal(t, (fx.Length+1)/2, l.Farthest, "farthest must be ceil(len/2)")

			far, err := loop.FarthestDistance(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, fx.Farthest, far)
		})
	}
}

// TestTrace_Order pins the one-way walk on the 8-cell square.
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// S resolves to 'F'; its first link (in Up, Down, Left, Right order) is Down,
// so the walk goes counter-clockwise.
func TestTrace_Order(t *testing.T) {
	g, err := gridgraph.Build(gridtest.Load(t, "square"))
	require.NoError(t, err)

	path, err := loop.Trace(g)
	require.NoError(t, err)
	want := []gridgraph.Coordinate{
		{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2},
		{Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 2},
	}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("Trace mismatch (-want +got):\n%s", diff)
	}
}

// TestDistances_PerCell checks that each cell gets the shorter way round.
func TestDistances_PerCell(t *testing.T) {
	g, err := gridgraph.Build(gridtest.Load(t, "square"))
	require.NoError(t, err)

	dist, far, err := loop.Distances(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 4, far)
	want := map[gridgraph.Coordinate]int{
		{Row: 1, Col: 1}: 0,
		{Row: 1, Col: 2}: 1, {Row: 2, Col: 1}: 1,
		{Row: 1, Col: 3}: 2, {Row: 3, Col: 1}: 2,
		{Row: 2, Col: 3}: 3, {Row: 3, Col: 2}: 3,
		{Row: 3, Col: 3}: 4,
	}
	if diff := cmp.Diff(want, dist); diff != "" {
		t.Errorf("Distances mismatch (-want +got):\n%s", diff)
	}
}

// TestWalk_ExcludesJunk verifies junk pipes next to the loop stay out of it.
func TestWalk_ExcludesJunk(t *testing.T) {
	g, err := gridgraph.Build(gridtest.Load(t, "square_junk"))
	require.NoError(t, err)

	l, err := loop.Walk(context.Background(), g)
	require.NoError(t, err)
	assert.Greater(t, g.Len(), l.Len())
	for _, c := range []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 4, Col: 4}} {
		assert.False(t, l.Members.Contains(c), "%v is junk", c)
	}
	assert.True(t, l.Members.Contains(g.Start))
}

func TestWalk_Errors(t *testing.T) {
	t.Run("Unresolved", func(t *testing.T) {
		g, err := gridgraph.Parse([]string{"S7", "LJ"})
		require.NoError(t, err)
		_, err = loop.Trace(g)
		assert.ErrorIs(t, err, loop.ErrUnresolved)
		_, _, err = loop.Distances(context.Background(), g)
		assert.ErrorIs(t, err, loop.ErrUnresolved)
	})

	// S resolves to 'F' but the path along the top dead-ends at '-' on the edge.
	open := []string{
		"S--",
		"|..",
		"L-J",
	}
	t.Run("OpenTrace", func(t *testing.T) {
		g, err := gridgraph.Build(open)
		require.NoError(t, err)
		_, err = loop.Trace(g)
		require.Error(t, err)
		assert.True(t, errors.Is(err, loop.ErrLoopOpen))
		assert.True(t, errors.Is(err, gridgraph.ErrInconsistentTopology))
	})
	t.Run("OpenSearch", func(t *testing.T) {
		g, err := gridgraph.Build(open)
		require.NoError(t, err)
		_, _, err = loop.Distances(context.Background(), g)
		assert.ErrorIs(t, err, loop.ErrLoopOpen)
		_, err = loop.Walk(context.Background(), g)
		assert.ErrorIs(t, err, loop.ErrLoopOpen)
	})
	t.Run("Cancelled", func(t *testing.T) {
		g, err := gridgraph.Build(gridtest.Load(t, "larger"))
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err = loop.Distances(ctx, g)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// TestWalk_Idempotent runs the walk repeatedly on the same grid.
func TestWalk_Idempotent(t *testing.T) {
	g, err := gridgraph.Build(gridtest.Load(t, "complex"))
	require.NoError(t, err)
	first, err := loop.Walk(context.Background(), g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := loop.Walk(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.Distance, again.Distance)
		assert.True(t, first.Members.Equal(again.Members))
	}
}

func TestSet(t *testing.T) {
	var zero loop.Set
	assert.Zero(t, zero.Len())
	assert.False(t, zero.Contains(gridgraph.Coordinate{}))
	assert.Empty(t, zero.Sorted())

	s := loop.NewSet([]gridgraph.Coordinate{{Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: 1}, {Row: 0, Col: 1}})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []gridgraph.Coordinate{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 2, Col: 0}}, s.Sorted())

	o := loop.NewSet(s.Sorted())
	assert.True(t, s.Equal(o))
	assert.False(t, s.Equal(loop.NewSet(nil)))
	assert.False(t, s.Equal(loop.NewSet([]gridgraph.Coordinate{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 9, Col: 9}})))
}
