package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Point is a zero-indexed (column, row) coordinate on the grid
type Point struct {
	X, Y int
}

// neighborOffsets lists the Moore neighborhood around a cell
var neighborOffsets = [8]Point{
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
}

// Grid represents the game board. The border is clipped: positions outside
// [0, width) x [0, height) do not exist and never count as alive.
//
// A Grid is sized once at construction and afterwards only mutated in place
// by Iterate / IterateParallel.
type Grid struct {
	width  int
	height int
	rows   []GridRow
}

// NewGrid creates a new grid of height rows with width dead cells each
func NewGrid(width, height int) *Grid {
	rows := make([]GridRow, height)
	for i := range rows {
		rows[i] = NewGridRow(width)
	}
	return &Grid{
		width:  width,
		height: height,
		rows:   rows,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Row returns row y. It panics when y is out of range.
func (g *Grid) Row(y int) GridRow {
	return g.rows[y]
}

// Cell returns a pointer to the cell at (x, y). It panics when the
// coordinate is out of range.
func (g *Grid) Cell(x, y int) *Cell {
	return g.rows[y].At(x)
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	return g.rows[y].Get(x).IsAlive()
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	g.rows[y].At(x).SetAlive(alive)
}

// Rows yields every row with its index, top to bottom
func (g *Grid) Rows() iter.Seq2[int, GridRow] {
	return func(yield func(int, GridRow) bool) {
		for y, row := range g.rows {
			if !yield(y, row) {
				return
			}
		}
	}
}

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetNeighbors returns the Moore-neighborhood coordinates of (x, y) that lie
// on the grid: 3 at a corner, 5 along an edge, 8 in the interior.
func (g *Grid) GetNeighbors(x, y int) []Point {
	neighbors := make([]Point, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if g.InBounds(nx, ny) {
			neighbors = append(neighbors, Point{X: nx, Y: ny})
		}
	}
	return neighbors
}

// CountLivingNeighbors counts living cells around (x, y) without allocating
func (g *Grid) CountLivingNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := g.rows[ny].cells
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx].alive {
				count++
			}
		}
	}

	return count
}

// Iterate advances the grid one generation in place.
//
// Neighbor counts are read from a frozen copy of the current generation so a
// cell's new state never leaks into a later cell's count within the same pass.
func (g *Grid) Iterate() {
	prev := scratchPool.Get(g.width, g.height)
	defer scratchPool.Put(prev)

	prev.CopyFrom(g)
	g.stepRows(prev, 0, g.height)
}

// IterateParallel advances the grid one generation, splitting rows across
// workers. workers <= 0 uses runtime.NumCPU(). The result is identical to
// Iterate.
func (g *Grid) IterateParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || g.height < 2 {
		g.Iterate()
		return
	}

	prev := scratchPool.Get(g.width, g.height)
	defer scratchPool.Put(prev)
	prev.CopyFrom(g)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRows(prev, startRow, endRow)
			return nil
		})
	}

	// Workers write disjoint rows and cannot fail.
	_ = eg.Wait()
}

// stepRows writes the next state of rows [start, end) using prev as the
// current generation.
func (g *Grid) stepRows(prev *Grid, start, end int) {
	for y := start; y < end; y++ {
		current := prev.rows[y].cells
		row := g.rows[y]
		for x := 0; x < g.width; x++ {
			neighbors := prev.CountLivingNeighbors(x, y)
			row.At(x).SetAlive(rules.ApplyConwayRules(neighbors, current[x].alive))
		}
	}
}

// CopyFrom overwrites the cells of g with those of src. Both grids must have
// the same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.width != src.width || g.height != src.height {
		panic(fmt.Sprintf("model: copy %dx%d grid into %dx%d grid", src.width, src.height, g.width, g.height))
	}
	for y := range g.rows {
		g.rows[y].copyFrom(src.rows[y])
	}
}

// Clone returns an independent deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.width, g.height)
	clone.CopyFrom(g)
	return clone
}

// Clear kills every cell
func (g *Grid) Clear() {
	for _, row := range g.rows {
		clear(row.cells)
	}
}

// reset resizes the grid to the given dimensions and clears it. Only pooled
// scratch grids are ever resized.
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.rows) != height {
		g.rows = make([]GridRow, height)
	}
	for i := range g.rows {
		if g.rows[i].Len() != width {
			g.rows[i] = NewGridRow(width)
		} else {
			clear(g.rows[i].cells)
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.rows {
		for _, c := range row.cells {
			if c.alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, g.width)
	for _, row := range g.rows {
		for x, c := range row.cells {
			buf[x] = 0
			if c.alive {
				buf[x] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y, row := range g.rows {
		for x, c := range row.cells {
			if c.alive != other.rows[y].cells[x].alive {
				return false
			}
		}
	}
	return true
}

// String renders the grid in the same 'o' / '_' form the file loader reads
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for _, row := range g.rows {
		for _, c := range row.cells {
			if c.alive {
				sb.WriteByte(AliveChar)
			} else {
				sb.WriteByte(DeadChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
