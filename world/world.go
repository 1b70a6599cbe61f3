// Package world provides the fixed-size toroidal grid primitives shared by
// the interpreter, the simulation kernel, and the fitness evaluators.
package world

// Size is the edge length of the square world grid.
const Size = 64

// StampSize is the edge length of a stamp, the small square bit pattern used
// as a drawing primitive.
const StampSize = 8

// CellsPerStamp is the number of cells in one stamp.
const CellsPerStamp = StampSize * StampSize

// Cell is the binary state of one grid position. Dead is the zero value, so
// fresh frames and stamps start all-dead. Alive is 0xFF so a frame doubles as
// a grayscale image buffer.
type Cell uint8

const (
	Dead  Cell = 0x00
	Alive Cell = 0xFF
)

// Frame is one time-step snapshot of the world. Adjacency is toroidal: edges
// wrap around in both axes. Frames are value types; assignment copies.
type Frame [Size][Size]Cell

// Stamp is a stamp-sized sub-grid, also toroidal within its own bounds.
type Stamp [StampSize][StampSize]Cell

// Wrap reduces a coordinate onto [0, n) with wrap-around in both directions.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Get returns the cell at (row, col) with toroidal addressing.
func (f *Frame) Get(row, col int) Cell {
	return f[Wrap(row, Size)][Wrap(col, Size)]
}

// Set writes the cell at (row, col) with toroidal addressing.
func (f *Frame) Set(row, col int, c Cell) {
	f[Wrap(row, Size)][Wrap(col, Size)] = c
}

// LiveCount returns the number of alive cells in the frame.
func (f *Frame) LiveCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if f[r][c] == Alive {
				n++
			}
		}
	}
	return n
}

// Empty reports whether the frame contains no alive cells.
func (f *Frame) Empty() bool {
	return f.LiveCount() == 0
}

// Neighbors returns the number of alive cells among the 8 toroidal neighbors
// of (row, col). The simulation kernel uses batched sliding-window sums
// instead; this is the reference path for tests and spot checks.
func (f *Frame) Neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if f.Get(row+dr, col+dc) == Alive {
				n++
			}
		}
	}
	return n
}

// LiveCount returns the number of alive cells in the stamp.
func (s *Stamp) LiveCount() int {
	n := 0
	for r := 0; r < StampSize; r++ {
		for c := 0; c < StampSize; c++ {
			if s[r][c] == Alive {
				n++
			}
		}
	}
	return n
}
