package pipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipe"
)

// TestConnectionTable pins the fixed symbol/direction mapping of all six variants.
func TestConnectionTable(t *testing.T) {
	cases := []struct {
		sym  rune
		want pipe.PipeType
		dirs pipe.Direction
	}{
		{'|', pipe.Vertical, pipe.Up | pipe.Down},
		{'-', pipe.Horizontal, pipe.Left | pipe.Right},
		{'L', pipe.UpRightBend, pipe.Up | pipe.Right},
		{'J', pipe.UpLeftBend, pipe.Up | pipe.Left},
		{'7', pipe.DownLeftBend, pipe.Down | pipe.Left},
		{'F', pipe.DownRightBend, pipe.Down | pipe.Right},
	}
	for _, tc := range cases {
		t.Run(string(tc.sym), func(t *testing.T) {
			p, ok := pipe.FromRune(tc.sym)
			require.True(t, ok)
			assert.Equal(t, tc.want, p)
			assert.Equal(t, tc.dirs, p.Directions())
			assert.Equal(t, 2, p.Directions().Count())
			assert.Equal(t, tc.sym, p.Rune())

			back, ok := pipe.FromDirections(tc.dirs)
			require.True(t, ok)
			assert.Equal(t, tc.want, back)
		})
	}
}

func TestFromRune_NonPipes(t *testing.T) {
	for _, r := range []rune{pipe.Ground, pipe.StartMarker, 'x', '0', ' '} {
		_, ok := pipe.FromRune(r)
		assert.False(t, ok, "symbol %q", r)
	}
}

func TestFromDirections_Invalid(t *testing.T) {
	for _, d := range []pipe.Direction{0, pipe.Up, pipe.Up | pipe.Down | pipe.Left, pipe.Up | pipe.Down | pipe.Left | pipe.Right} {
		_, ok := pipe.FromDirections(d)
		assert.False(t, ok, "set %v", d)
	}
}

// TestPredicates checks GoesUp/GoesDown/GoesLeft/GoesRight against the table.
func TestPredicates(t *testing.T) {
	up := map[pipe.PipeType]bool{pipe.Vertical: true, pipe.UpRightBend: true, pipe.UpLeftBend: true}
	down := map[pipe.PipeType]bool{pipe.Vertical: true, pipe.DownLeftBend: true, pipe.DownRightBend: true}
	left := map[pipe.PipeType]bool{pipe.Horizontal: true, pipe.UpLeftBend: true, pipe.DownLeftBend: true}
	right := map[pipe.PipeType]bool{pipe.Horizontal: true, pipe.UpRightBend: true, pipe.DownRightBend: true}
	for _, p := range pipe.Types {
		assert.Equal(t, up[p], p.GoesUp(), "%v up", p)
		assert.Equal(t, down[p], p.GoesDown(), "%v down", p)
		assert.Equal(t, left[p], p.GoesLeft(), "%v left", p)
		assert.Equal(t, right[p], p.GoesRight(), "%v right", p)
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, pipe.Down, pipe.Up.Opposite())
	assert.Equal(t, pipe.Up, pipe.Down.Opposite())
	assert.Equal(t, pipe.Right, pipe.Left.Opposite())
	assert.Equal(t, pipe.Left, pipe.Right.Opposite())
	assert.Equal(t, pipe.Down|pipe.Left, (pipe.Up | pipe.Right).Opposite())
}

func TestDirection_Delta(t *testing.T) {
	for _, d := range pipe.Cardinals {
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		assert.Equal(t, 0, dr+or, "%v", d)
		assert.Equal(t, 0, dc+oc, "%v", d)
		assert.Equal(t, 1, dr*dr+dc*dc, "%v", d)
	}
	dr, dc := (pipe.Up | pipe.Left).Delta()
	assert.Zero(t, dr)
	assert.Zero(t, dc)
}

func TestZeroValue(t *testing.T) {
	var p pipe.PipeType
	assert.False(t, p.Valid())
	assert.Zero(t, p.Directions())
	assert.False(t, p.GoesUp())
	assert.Equal(t, '?', p.Rune())
	assert.Equal(t, "none", pipe.Direction(0).String())
	assert.Equal(t, "up|right", (pipe.Up | pipe.Right).String())
}
