package model

import "math/rand/v2"

// NewRNG returns a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// setClipped sets a cell, ignoring positions that fall off the grid
func (g *Grid) setClipped(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.Set(x, y, alive)
	}
}

// Randomize brings cells to life with the given probability. Cells that are
// already alive are left alone.
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < density {
				g.Set(x, y, true)
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.setClipped(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a horizontal blinker pattern
func (g *Grid) AddOscillator(startX, startY int) {
	g.setClipped(startX, startY, true)
	g.setClipped(startX+1, startY, true)
	g.setClipped(startX+2, startY, true)
}

// ResetWithInterestingPatterns clears the grid, adds gliders and blinkers
// when there is room for them, then sprinkles random life on top.
func (g *Grid) ResetWithInterestingPatterns(density float64, rng *rand.Rand) {
	g.Clear()

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		g.AddOscillator(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4)
		}
	}

	g.Randomize(density, rng)
}
