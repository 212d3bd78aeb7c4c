// Package engine implements the 2048 board engine: sliding and merging tiles,
// spawning new ones, detecting the end of a game and undoing recent moves.
// It knows nothing about rendering, input devices or persistence.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// ErrInvalidBoard is returned when a board holds a value that is neither zero
// nor a power of two.
var ErrInvalidBoard = errors.New("engine: invalid board")

// ErrUnknownDirection is returned when parsing an unrecognized direction name.
var ErrUnknownDirection = errors.New("engine: unknown direction")

// Board is a 4x4 grid stored row-major (index = row*Size + col).
// Zero means empty.
type Board [Cells]int

// Line is a single row or column in scan order.
type Line [Size]int

// Position addresses a single cell.
type Position struct {
	Row, Col int
}

// Index returns the row-major board index of the position.
func (p Position) Index() int {
	return p.Row*Size + p.Col
}

// At returns the value at (row, col).
func (b Board) At(row, col int) int {
	return b[row*Size+col]
}

// Set stores a value at (row, col).
func (b *Board) Set(row, col, value int) {
	b[row*Size+col] = value
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b Board) EmptyCells() []Position {
	var cells []Position
	for i, v := range b {
		if v == 0 {
			cells = append(cells, Position{Row: i / Size, Col: i % Size})
		}
	}
	return cells
}

// Full reports whether every cell holds a tile.
func (b Board) Full() bool {
	for _, v := range b {
		if v == 0 {
			return false
		}
	}
	return true
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Validate checks that every cell is zero or a power of two >= 2.
func (b Board) Validate() error {
	for i, v := range b {
		if !validTile(v) {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidBoard, i, v)
		}
	}
	return nil
}

func validTile(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// String renders the board as four space-separated rows.
func (b Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.At(row, col))
		}
	}
	return sb.String()
}

// SlideLine compacts a line toward index 0 and merges adjacent equal tiles.
// A tile takes part in at most one merge: [4 4 4 4] becomes [8 8 0 0].
// Returns the new line and the score gained from merges.
func SlideLine(line Line) (Line, int) {
	var packed Line
	n := 0
	for _, v := range line {
		if v != 0 {
			packed[n] = v
			n++
		}
	}

	gained := 0
	for i := 0; i < n-1; i++ {
		if packed[i] != 0 && packed[i] == packed[i+1] {
			packed[i] *= 2
			gained += packed[i]
			packed[i+1] = 0
		}
	}

	var result Line
	w := 0
	for i := range n {
		if packed[i] != 0 {
			result[w] = packed[i]
			w++
		}
	}

	return result, gained
}

// IsGameOverState reports whether the board is full and no two horizontally
// or vertically adjacent cells are equal.
func IsGameOverState(b Board) bool {
	for row := range Size {
		for col := range Size {
			v := b.At(row, col)
			if v == 0 {
				return false
			}
			if col < Size-1 && b.At(row, col+1) == v {
				return false
			}
			if row < Size-1 && b.At(row+1, col) == v {
				return false
			}
		}
	}
	return true
}
