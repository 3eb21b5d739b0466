package render

import (
	"testing"

	tl "github.com/JoelOtter/termloop"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/model"
)

// recordingCanvas remembers the last cell painted at each position
type recordingCanvas struct {
	cells map[model.Point]tl.Cell
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{cells: map[model.Point]tl.Cell{}}
}

func (c *recordingCanvas) RenderCell(x, y int, cell *tl.Cell) {
	c.cells[model.Point{X: x, Y: y}] = *cell
}

func (c *recordingCanvas) line(y, width int) string {
	runes := make([]rune, 0, width)
	for x := range width {
		runes = append(runes, c.cells[model.Point{X: x, Y: y}].Ch)
	}
	return string(runes)
}

func TestBoardRendersLatestHandle(t *testing.T) {
	grid := sampleGrid()
	d := dispatcher.New(grid)
	ch := make(chan *dispatcher.Handle, 1)
	b := newBoard(ch, DefaultPalette, '#')

	c := newRecordingCanvas()
	b.render(c)
	if len(c.cells) != 0 {
		t.Fatalf("painted %d cells before any handle arrived", len(c.cells))
	}

	ch <- d.Handle()
	b.render(c)

	for y := range grid.GetHeight() {
		for x := range grid.GetWidth() {
			cell, ok := c.cells[model.Point{X: x, Y: y}]
			if !ok {
				t.Fatalf("cell (%d,%d) not painted", x, y)
			}
			want := b.dead
			if grid.Get(x, y) {
				want = b.alive
			}
			if cell != want {
				t.Fatalf("cell (%d,%d) = %+v, want %+v", x, y, cell, want)
			}
		}
	}

	if got := c.line(grid.GetHeight()+1, 6); got != "Gen: 0" {
		t.Fatalf("status line starts %q", got)
	}
}

func TestBoardStopsGameOnDisconnect(t *testing.T) {
	ch := make(chan *dispatcher.Handle, 1)
	ch <- dispatcher.New(sampleGrid()).Handle()
	b := newBoard(ch, DefaultPalette, '#')
	close(ch)

	c := newRecordingCanvas()
	frames := 0
	err := runUntilStopped(func() {
		// Stand-in for termloop's main loop, which never returns by itself.
		for {
			b.render(c)
			frames++
		}
	})

	if errors.Cause(err) != ErrDisconnected {
		t.Fatalf("runUntilStopped() = %v, want ErrDisconnected", err)
	}
	if frames != 1 {
		t.Fatalf("loop ran %d frames after the queued handle, want 1", frames)
	}
}

func TestBoardQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tl.Event
		quit bool
	}{
		{"q quits", tl.Event{Type: tl.EventKey, Ch: 'q'}, true},
		{"x quits", tl.Event{Type: tl.EventKey, Ch: 'x'}, true},
		{"other key ignored", tl.Event{Type: tl.EventKey, Ch: 'a'}, false},
		{"non-key event ignored", tl.Event{Type: tl.EventResize, Ch: 'q'}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(nil, DefaultPalette, '#')
			ticked := false
			err := runUntilStopped(func() {
				b.Tick(tt.ev)
				ticked = true
			})
			if err != nil {
				t.Fatalf("runUntilStopped() = %v, want nil", err)
			}
			if ticked == tt.quit {
				t.Fatalf("quit = %v, want %v", !ticked, tt.quit)
			}
		})
	}
}

func TestRunUntilStoppedPassesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	_ = runUntilStopped(func() { panic("boom") })
	t.Fatalf("panic was swallowed")
}

func TestAliveAndDeadCellsDiffer(t *testing.T) {
	b := newBoard(nil, DefaultPalette, '@')
	if b.alive.Ch != '@' {
		t.Fatalf("alive rune = %q", b.alive.Ch)
	}
	if b.alive.Bg == b.dead.Bg && b.alive.Fg == b.dead.Fg {
		t.Fatalf("alive and dead cells look identical")
	}
}
