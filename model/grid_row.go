package model

import "iter"

// GridRow is a fixed-width run of cells. Its length never changes after
// construction, and indexing outside [0, Len()) panics.
type GridRow struct {
	cells []Cell
}

// NewGridRow creates a row of width dead cells
func NewGridRow(width int) GridRow {
	return GridRow{cells: make([]Cell, width)}
}

// Len returns the width of the row
func (r GridRow) Len() int {
	return len(r.cells)
}

// At returns a pointer to cell i for in-place mutation
func (r GridRow) At(i int) *Cell {
	return &r.cells[i]
}

// Get returns a copy of cell i
func (r GridRow) Get(i int) Cell {
	return r.cells[i]
}

// Cells yields each cell with its column index, left to right
func (r GridRow) Cells() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for x, c := range r.cells {
			if !yield(x, c) {
				return
			}
		}
	}
}

// copyFrom overwrites the row with src; both rows must have the same width
func (r GridRow) copyFrom(src GridRow) {
	if len(r.cells) != len(src.cells) {
		panic("model: row width mismatch")
	}
	copy(r.cells, src.cells)
}
