package pipe

import (
	"math/bits"
	"strings"
)

// Direction is a cardinal direction on the grid. Values are single bits so
// that several directions can be OR-ed into a direction set.
type Direction uint8

const (
	// Up points to the previous row.
	Up Direction = 1 << iota
	// Down points to the next row.
	Down
	// Left points to the previous column.
	Left
	// Right points to the next column.
	Right
)

// Cardinals lists the four directions in the order neighbours are probed.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing back. Sets are mirrored bit by bit.
func (d Direction) Opposite() Direction {
	var o Direction
	if d&Up != 0 {
		o |= Down
	}
	if d&Down != 0 {
		o |= Up
	}
	if d&Left != 0 {
		o |= Right
	}
	if d&Right != 0 {
		o |= Left
	}
	return o
}

// Delta returns the (row, col) offset of a single direction.
// A set or zero value yields (0, 0).
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Count reports how many directions the set holds.
func (d Direction) Count() int {
	return bits.OnesCount8(uint8(d))
}

// Has reports whether every direction in o is part of d.
func (d Direction) Has(o Direction) bool {
	return o != 0 && d&o == o
}

func (d Direction) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	for _, c := range Cardinals {
		if d&c == 0 {
			continue
		}
		switch c {
		case Up:
			parts = append(parts, "up")
		case Down:
			parts = append(parts, "down")
		case Left:
			parts = append(parts, "left")
		case Right:
			parts = append(parts, "right")
		}
	}
	return strings.Join(parts, "|")
}

// PipeType is one of the six pipe orientations. The zero value is not a pipe.
type PipeType uint8

const (
	// Vertical connects Up and Down ('|').
	Vertical PipeType = iota + 1
	// Horizontal connects Left and Right ('-').
	Horizontal
	// UpRightBend connects Up and Right ('L').
	UpRightBend
	// UpLeftBend connects Up and Left ('J').
	UpLeftBend
	// DownLeftBend connects Down and Left ('7').
	DownLeftBend
	// DownRightBend connects Down and Right ('F').
	DownRightBend
)

// Types lists the six variants in declaration order.
var Types = [6]PipeType{Vertical, Horizontal, UpRightBend, UpLeftBend, DownLeftBend, DownRightBend}

// Symbols used by the text format that are not pipes.
const (
	Ground      = '.'
	StartMarker = 'S'
)

var (
	connections = [...]Direction{
		Vertical:      Up | Down,
		Horizontal:    Left | Right,
		UpRightBend:   Up | Right,
		UpLeftBend:    Up | Left,
		DownLeftBend:  Down | Left,
		DownRightBend: Down | Right,
	}
	runes = [...]rune{
		Vertical:      '|',
		Horizontal:    '-',
		UpRightBend:   'L',
		UpLeftBend:    'J',
		DownLeftBend:  '7',
		DownRightBend: 'F',
	}
	names = [...]string{
		Vertical:      "Vertical",
		Horizontal:    "Horizontal",
		UpRightBend:   "UpRightBend",
		UpLeftBend:    "UpLeftBend",
		DownLeftBend:  "DownLeftBend",
		DownRightBend: "DownRightBend",
	}
)

// Valid reports whether p is one of the six variants.
func (p PipeType) Valid() bool {
	return p >= Vertical && p <= DownRightBend
}

// Directions returns the two directions p connects, or 0 for an invalid value.
func (p PipeType) Directions() Direction {
	if !p.Valid() {
		return 0
	}
	return connections[p]
}

// Connects reports whether p opens towards d.
func (p PipeType) Connects(d Direction) bool {
	return p.Directions().Has(d)
}

func (p PipeType) GoesUp() bool    { return p.Connects(Up) }
func (p PipeType) GoesDown() bool  { return p.Connects(Down) }
func (p PipeType) GoesLeft() bool  { return p.Connects(Left) }
func (p PipeType) GoesRight() bool { return p.Connects(Right) }

// Rune returns the text symbol of p, or '?' for an invalid value.
func (p PipeType) Rune() rune {
	if !p.Valid() {
		return '?'
	}
	return runes[p]
}

func (p PipeType) String() string {
	if !p.Valid() {
		return "PipeType(invalid)"
	}
	return names[p]
}

// FromRune maps a text symbol to its pipe type. Ground, the start marker and
// any unknown symbol report false.
func FromRune(r rune) (PipeType, bool) {
	for _, p := range Types {
		if runes[p] == r {
			return p, true
		}
	}
	return 0, false
}

// FromDirections returns the pipe type whose connection set is exactly d.
func FromDirections(d Direction) (PipeType, bool) {
	for _, p := range Types {
		if connections[p] == d {
			return p, true
		}
	}
	return 0, false
}
