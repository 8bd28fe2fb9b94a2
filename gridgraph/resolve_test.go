package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// TestResolveStart_AllSixTypes places the start in each of the six possible
// positions of a 2×2 or 1×N loop fragment and checks the inferred type.
func TestResolveStart_AllSixTypes(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want pipe.PipeType
	}{
		{"DownRight", []string{"S7", "LJ"}, pipe.DownRightBend},
		{"DownLeft", []string{"FS", "LJ"}, pipe.DownLeftBend},
		{"UpRight", []string{"F7", "SJ"}, pipe.UpRightBend},
		{"UpLeft", []string{"F7", "LS"}, pipe.UpLeftBend},
		{"Horizontal", []string{"F7.", "|L7", "LSJ"}, pipe.Horizontal},
		{"Vertical", []string{"F7", "S|", "LJ"}, pipe.Vertical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Build(tc.rows)
			require.NoError(t, err)
			p, ok := g.PipeAt(g.Start)
			require.True(t, ok)
			assert.Equal(t, tc.want, p)
		})
	}
}

// TestResolveStart_IgnoresNonReciprocal checks that neighbours pointing away
// from the start are disregarded.
func TestResolveStart_IgnoresNonReciprocal(t *testing.T) {
	// '-' above S and '|' left of S do not connect back.
	g, err := gridgraph.Build([]string{
		".-...",
		"|S-7.",
		".|.|.",
		".L-J.",
	})
	require.NoError(t, err)
	p, ok := g.PipeAt(g.Start)
	require.True(t, ok)
	assert.Equal(t, pipe.DownRightBend, p)
}

func TestResolveStart_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"Isolated", []string{"...", ".S.", "..."}},
		{"OneNeighbour", []string{"...", ".S-", "..."}},
		{"FourNeighbours", []string{".|.", "-S-", ".|."}},
		{"ThreeNeighbours", []string{".|.", "-S-", "..."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Build(tc.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, gridgraph.ErrStartUnresolved), "got %v", err)
			assert.True(t, errors.Is(err, gridgraph.ErrInconsistentTopology))
		})
	}
}

// TestResolve_Once ensures the grid accepts exactly one mutation.
func TestResolve_Once(t *testing.T) {
	g, err := gridgraph.Build([]string{"S7", "LJ"})
	require.NoError(t, err)
	err = g.Resolve()
	assert.ErrorIs(t, err, gridgraph.ErrAlreadyResolved)

	p, ok := g.PipeAt(g.Start)
	require.True(t, ok)
	assert.Equal(t, pipe.DownRightBend, p, "start type must survive a rejected Resolve")
}

// TestResolveStart_Pure checks that ResolveStart does not touch the mapping.
func TestResolveStart_Pure(t *testing.T) {
	start := gridgraph.Coordinate{Row: 0, Col: 0}
	pipes := map[gridgraph.Coordinate]pipe.PipeType{
		{Row: 0, Col: 1}: pipe.DownLeftBend,
		{Row: 1, Col: 0}: pipe.UpRightBend,
		{Row: 1, Col: 1}: pipe.UpLeftBend,
	}
	p, err := gridgraph.ResolveStart(pipes, start)
	require.NoError(t, err)
	assert.Equal(t, pipe.DownRightBend, p)
	assert.Len(t, pipes, 3)
	_, ok := pipes[start]
	assert.False(t, ok)
}
