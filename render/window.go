//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/model"
)

const windowTitle = "Go of Life"

// Window draws the grid in a graphical window, one scaled pixel per cell.
// Q or Escape quits.
type Window struct {
	palette Palette
	scale   int
	tps     int
}

// NewWindow scales each cell to scale x scale pixels and polls for new
// handles tps times per second.
func NewWindow(palette Palette, scale, tps int) *Window {
	if scale <= 0 {
		scale = 1
	}
	if tps <= 0 {
		tps = 60
	}
	return &Window{palette: palette, scale: scale, tps: tps}
}

// Draw opens the window and blocks until it is closed
func (r *Window) Draw(handles <-chan *dispatcher.Handle) error {
	first, ok := <-handles
	if !ok {
		return errors.Wrap(ErrDisconnected, "[Window.Draw] before the first frame")
	}

	var w, h int
	first.Read(func(grid *model.Grid, _ int) {
		w, h = grid.GetWidth(), grid.GetHeight()
	})

	game := &windowGame{
		handles: handles,
		current: first,
		w:       w,
		h:       h,
		scale:   r.scale,
		on:      r.palette.Cell.RGBA(),
		off:     r.palette.Background.RGBA(),
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(r.tps)
	ebiten.SetWindowSize(w*r.scale, h*r.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Window.Draw]")
	}
	return nil
}

// windowGame adapts a handle stream to the ebiten.Game interface
type windowGame struct {
	handles <-chan *dispatcher.Handle
	current *dispatcher.Handle

	w, h  int
	scale int
	on    color.Color
	off   color.Color

	img *ebiten.Image
	buf []byte
}

// Update handles input and picks up the newest handle
func (g *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case h, ok := <-g.handles:
		if !ok {
			return ErrDisconnected
		}
		g.current = h
	default:
	}
	return nil
}

// Draw renders the live grid
func (g *windowGame) Draw(screen *ebiten.Image) {
	g.current.Read(func(grid *model.Grid, _ int) {
		fillGridRGBA(g.buf, grid, g.on, g.off)
	})
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size
func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h * g.scale
}
