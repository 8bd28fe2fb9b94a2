// Package render draws a classified grid as text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
)

// glyphs maps pipe types to box-drawing characters.
var glyphs = map[pipe.PipeType]string{
	pipe.Vertical:      "│",
	pipe.Horizontal:    "─",
	pipe.UpRightBend:   "└",
	pipe.UpLeftBend:    "┘",
	pipe.DownLeftBend:  "┐",
	pipe.DownRightBend: "┌",
}

// Options controls the drawing.
type Options struct {
	Color   bool
	Inside  string
	Outside string
}

// Styles used when Color is set.
var (
	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	loopStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	insideStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	outsideStyle = lipgloss.NewStyle().Faint(true)
)

// Grid draws g one line per row. Loop cells use box-drawing glyphs, the
// start is 'S', cells in inside use opts.Inside and every other cell
// (ground or junk pipe) uses opts.Outside.
func Grid(g *gridgraph.Grid, members loop.Set, inside []gridgraph.Coordinate, opts Options) string {
	in := loop.NewSet(inside)
	style := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			at := gridgraph.Coordinate{Row: r, Col: c}
			switch {
			case at == g.Start:
				b.WriteString(style(startStyle, "S"))
			case members.Contains(at):
				p, _ := g.PipeAt(at)
				b.WriteString(style(loopStyle, glyphs[p]))
			case in.Contains(at):
				b.WriteString(style(insideStyle, opts.Inside))
			default:
				b.WriteString(style(outsideStyle, opts.Outside))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
