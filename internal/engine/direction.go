package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a name such as "left" into a Direction.
// Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDirection, s)
}

// axis selects whether a traversal walks rows or columns.
type axis int

const (
	axisRow axis = iota
	axisCol
)

// traversal describes a move as the axis its lines lie on and whether lines
// are scanned from the far edge. Sliding always compacts toward scan index 0.
type traversal struct {
	axis     axis
	reversed bool
}

var traversals = [...]traversal{
	DirUp:    {axis: axisCol},
	DirDown:  {axis: axisCol, reversed: true},
	DirLeft:  {axis: axisRow},
	DirRight: {axis: axisRow, reversed: true},
}

// traversalFor panics on an invalid direction: callers validate input at the
// boundary with ParseDirection.
func traversalFor(d Direction) traversal {
	if !d.Valid() {
		panic(fmt.Sprintf("engine: invalid direction %d", int(d)))
	}
	return traversals[d]
}

// cellIndex returns the board index of the i-th cell (in scan order) of line k.
func (t traversal) cellIndex(k, i int) int {
	if t.reversed {
		i = Size - 1 - i
	}
	if t.axis == axisRow {
		return k*Size + i
	}
	return i*Size + k
}

func (b Board) line(t traversal, k int) Line {
	var l Line
	for i := range Size {
		l[i] = b[t.cellIndex(k, i)]
	}
	return l
}

func (b *Board) setLine(t traversal, k int, l Line) {
	for i := range Size {
		b[t.cellIndex(k, i)] = l[i]
	}
}

// Slide returns the board after sliding every line in direction d, the score
// gained and whether any line changed. The input board is not modified.
func Slide(b Board, d Direction) (Board, int, bool) {
	return slide(b, traversalFor(d))
}

func slide(b Board, t traversal) (Board, int, bool) {
	result := b
	total := 0
	changed := false

	for k := range Size {
		before := b.line(t, k)
		after, gained := SlideLine(before)
		total += gained
		if after != before {
			changed = true
			result.setLine(t, k, after)
		}
	}

	return result, total, changed
}

// CanMove reports whether a move in direction d would change the board.
func CanMove(b Board, d Direction) bool {
	_, _, changed := Slide(b, d)
	return changed
}
