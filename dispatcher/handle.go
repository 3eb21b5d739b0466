package dispatcher

import (
	"sync"

	"github.com/sheikhrachel/go-life/model"
)

// Handle is a shared reference to the one live grid owned by a Dispatcher.
//
// A Handle is not a snapshot: whatever generation the grid holds when the
// read lock is taken is what the reader sees, no matter when the Handle was
// received. Readers never mutate the grid.
type Handle struct {
	mu         sync.RWMutex
	grid       *model.Grid
	generation int
}

func newHandle(grid *model.Grid) *Handle {
	return &Handle{grid: grid}
}

// RLock acquires shared read access, blocking while a step is in progress
func (h *Handle) RLock() { h.mu.RLock() }

// RUnlock releases shared read access
func (h *Handle) RUnlock() { h.mu.RUnlock() }

// Grid returns the live grid. Only call it while holding the read lock.
func (h *Handle) Grid() *model.Grid { return h.grid }

// Generation returns how many steps the grid has taken. Only call it while
// holding the read lock.
func (h *Handle) Generation() int { return h.generation }

// Read runs fn with the read lock held
func (h *Handle) Read(fn func(grid *model.Grid, generation int)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn(h.grid, h.generation)
}

// write runs fn with exclusive access, then bumps the generation counter
func (h *Handle) write(fn func(grid *model.Grid)) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.grid)
	h.generation++
	return h.generation
}
