package render

import (
	"fmt"

	tl "github.com/JoelOtter/termloop"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
)

const tuiFPS = 30

// canvas is the part of *tl.Screen the board paints on
type canvas interface {
	RenderCell(x, y int, c *tl.Cell)
}

// stopGame unwinds termloop's main loop, which otherwise only ends on the
// end key. Start defers its own terminal cleanup, so panicking out of an
// entity callback still restores the screen.
type stopGame struct {
	disconnected bool
}

// CharacterCell draws the grid in a full-screen terminal UI, one character
// per cell. q, x or Ctrl+C quits.
type CharacterCell struct {
	palette Palette
	char    rune
}

// NewCharacterCell paints living cells as char in the palette's cell colours
func NewCharacterCell(palette Palette, char rune) *CharacterCell {
	return &CharacterCell{palette: palette, char: char}
}

// Draw runs the terminal UI until the user quits or the handle channel closes
func (r *CharacterCell) Draw(handles <-chan *dispatcher.Handle) error {
	board := newBoard(handles, r.palette, r.char)

	game := tl.NewGame()
	game.SetEndKey(tl.KeyCtrlC)
	game.Screen().SetFps(tuiFPS)

	level := tl.NewBaseLevel(tl.Cell{Bg: attr(r.palette.Background)})
	level.AddEntity(board)
	game.Screen().SetLevel(level)

	return runUntilStopped(game.Start)
}

// runUntilStopped runs the game loop and turns a stopGame panic raised by
// the board into Draw's result. Any other panic is passed on.
func runUntilStopped(run func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stop, ok := r.(stopGame)
		if !ok {
			panic(r)
		}
		if stop.disconnected {
			err = errors.Wrap(ErrDisconnected, "[CharacterCell.Draw]")
		}
	}()

	run()
	return nil
}

func attr(c Color) tl.Attr {
	return tl.RgbTo256Color(int(c.R), int(c.G), int(c.B))
}

// board is the termloop entity that paints the latest handle every frame
type board struct {
	handles <-chan *dispatcher.Handle
	current *dispatcher.Handle

	alive tl.Cell
	dead  tl.Cell
}

func newBoard(handles <-chan *dispatcher.Handle, palette Palette, char rune) *board {
	return &board{
		handles: handles,
		alive:   tl.Cell{Fg: attr(palette.Cell), Bg: attr(palette.CellBackground), Ch: char},
		dead:    tl.Cell{Fg: attr(palette.Background), Bg: attr(palette.Background), Ch: char},
	}
}

// Tick is part of tl.Drawable; q and x quit
func (b *board) Tick(ev tl.Event) {
	if ev.Type == tl.EventKey && (ev.Ch == 'q' || ev.Ch == 'x') {
		panic(stopGame{})
	}
}

// Draw is part of tl.Drawable
func (b *board) Draw(screen *tl.Screen) {
	b.render(screen)
}

// render takes the newest handle if one is waiting and paints the grid it
// points at. The grid is re-read every frame since the handle is live.
func (b *board) render(c canvas) {
	b.poll()
	if b.current == nil {
		return
	}

	b.current.RLock()
	defer b.current.RUnlock()

	grid := b.current.Grid()
	for y, row := range grid.Rows() {
		for x, cell := range row.Cells() {
			if cell.IsAlive() {
				c.RenderCell(x, y, &b.alive)
			} else {
				c.RenderCell(x, y, &b.dead)
			}
		}
	}

	status := fmt.Sprintf("Gen: %d | Living: %d | q to quit", b.current.Generation(), grid.CountLivingCells())
	b.renderText(c, 0, grid.GetHeight()+1, status)
}

// poll swaps in the next queued handle without blocking the frame and stops
// the game once the channel is closed
func (b *board) poll() {
	select {
	case h, ok := <-b.handles:
		if !ok {
			panic(stopGame{disconnected: true})
		}
		b.current = h
	default:
	}
}

func (b *board) renderText(c canvas, x, y int, text string) {
	for i, ch := range []rune(text) {
		c.RenderCell(x+i, y, &tl.Cell{Fg: tl.ColorWhite, Bg: tl.ColorDefault, Ch: ch})
	}
}
