// Package life implements a two-state cellular automaton on a fixed-size
// grid with wraparound adjacency, used to drive the animated background
// highlight.
package life

import (
	"fmt"

	"github.com/san-kum/glimmer/internal/rng"
)

// Cell is one board position.
type Cell uint8

const (
	Dead Cell = iota
	Live
)

// Board holds width*height cells as a flat row-major array. A zero-area
// board may be constructed but must never be indexed.
type Board struct {
	cells  []Cell
	width  int
	height int
}

// New seeds a board where each cell is independently Live with
// probability 1/4.
func New(seed rng.Seed, width, height int) *Board {
	s := rng.New(seed)
	cells := make([]Cell, width*height)
	for i := range cells {
		if s.Bool(1, 4) {
			cells[i] = Live
		}
	}
	return &Board{cells: cells, width: width, height: height}
}

func newFromCells(cells []Cell, width, height int) *Board {
	return &Board{cells: cells, width: width, height: height}
}

// Cells exposes the flat cell state for rendering. Callers must treat the
// slice as read-only; Tick is the only mutator.
func (b *Board) Cells() []Cell {
	return b.cells
}

// Population counts the live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c == Live {
			n++
		}
	}
	return n
}

// neighborOffsets in a flat row-major array, for a board of width w.
func neighborOffsets(w int) [8]int {
	return [8]int{-w - 1, -w, -w + 1, -1, 1, w - 1, w, w + 1}
}

// Tick advances one generation in place. Neighbor counts are read entirely
// from a snapshot of the prior generation; the rule is the standard one:
// exactly 3 live neighbors → Live, exactly 2 → unchanged, anything else
// → Dead.
func (b *Board) Tick() {
	prev := make([]Cell, len(b.cells))
	copy(prev, b.cells)

	offsets := neighborOffsets(b.width)
	for i := range prev {
		sum := 0
		for _, off := range offsets {
			sum += int(prev[WrapIndex(b.width, b.height, i+off)])
		}
		if sum < 2 || sum > 3 {
			b.cells[i] = Dead
		} else if prev[i] == Dead && sum == 3 {
			b.cells[i] = Live
		}
	}
}

// WrapIndex maps an out-of-range flat index back onto the board buffer.
// Note this wraps over the full buffer length, which matches per-axis
// toroidal wrap only while the offset stays within one row; renderers and
// tests depend on this exact formula, so it is kept as-is rather than
// replaced with row/column arithmetic.
// Panics when the board area is zero.
func WrapIndex(width, height, index int) int {
	n := width * height
	if n == 0 {
		panic(fmt.Sprintf("life: wrap index on zero-area board (%dx%d)", width, height))
	}
	i := (n + index) % n
	if i < 0 {
		return -i
	}
	return i
}
