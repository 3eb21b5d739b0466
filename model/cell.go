package model

// Cell is a single position on the board. The zero value is dead.
type Cell struct {
	alive bool
}

// Arise brings the cell to life
func (c *Cell) Arise() {
	c.alive = true
}

// Die kills the cell
func (c *Cell) Die() {
	c.alive = false
}

// SetAlive sets the cell to alive (true) or dead (false)
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

// WithAlive returns a copy of the cell with the given state
func (c Cell) WithAlive(alive bool) Cell {
	c.alive = alive
	return c
}
