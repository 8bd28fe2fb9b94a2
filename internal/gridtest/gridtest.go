// Package gridtest provides grid fixtures shared by tests.
package gridtest

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/internal/input"
)

// Fixture describes a grid in testdata/ and its known answers.
type Fixture struct {
	Name     string
	Farthest int
	Enclosed int
	Length   int
}

// Fixtures lists every grid under testdata/.
var Fixtures = []Fixture{
	{Name: "minimal", Farthest: 2, Enclosed: 0, Length: 4},
	{Name: "square", Farthest: 4, Enclosed: 1, Length: 8},
	{Name: "square_junk", Farthest: 4, Enclosed: 1, Length: 8},
	{Name: "complex", Farthest: 8, Enclosed: 1, Length: 16},
	{Name: "pocket", Farthest: 23, Enclosed: 4, Length: 46},
	{Name: "squeezed", Farthest: 22, Enclosed: 4, Length: 44},
	{Name: "larger", Farthest: 70, Enclosed: 8, Length: 140},
}

// Path returns the absolute path of testdata/<name>.txt.
func Path(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name+".txt")
}

// Load reads testdata/<name>.txt or fails the test.
func Load(tb testing.TB, name string) []string {
	tb.Helper()
	rows, err := input.ReadFile(Path(name))
	if err != nil {
		tb.Fatalf("load %s: %v", name, err)
	}
	return rows
}

// Rectangle draws a w×h rectangular loop (w, h ≥ 2) inside a one-cell
// ground margin. The start replaces the perimeter cell at index start
// (mod 2w+2h-4), counted clockwise from the top-left corner.
func Rectangle(w, h, start int) []string {
	grid := make([][]byte, h+2)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", w+2))
	}
	var ring [][2]int
	for c := 1; c <= w; c++ {
		ring = append(ring, [2]int{1, c})
	}
	for r := 2; r <= h; r++ {
		ring = append(ring, [2]int{r, w})
	}
	for c := w - 1; c >= 1; c-- {
		ring = append(ring, [2]int{h, c})
	}
	for r := h - 1; r >= 2; r-- {
		ring = append(ring, [2]int{r, 1})
	}
	for _, rc := range ring {
		r, c := rc[0], rc[1]
		switch {
		case r == 1 && c == 1:
			grid[r][c] = 'F'
		case r == 1 && c == w:
			grid[r][c] = '7'
		case r == h && c == 1:
			grid[r][c] = 'L'
		case r == h && c == w:
			grid[r][c] = 'J'
		case r == 1 || r == h:
			grid[r][c] = '-'
		default:
			grid[r][c] = '|'
		}
	}
	s := ring[((start%len(ring))+len(ring))%len(ring)]
	grid[s[0]][s[1]] = 'S'

	rows := make([]string, len(grid))
	for i, b := range grid {
		rows[i] = string(b)
	}
	return rows
}
