// Package render draws the live grid published by a dispatcher.
package render

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/utils"
)

var ErrDisconnected = errors.New("grid dispatcher disconnected")

// Renderer consumes grid handles and draws them until told to stop. Each
// received handle is read under its shared lock, rows then cells.
//
// Draw returns nil on a user-requested stop and ErrDisconnected (wrapped)
// when the handle channel closes.
type Renderer interface {
	Draw(handles <-chan *dispatcher.Handle) error
}

// New builds the renderer named by cfg.Renderer. out is only used by the
// plain terminal renderer.
func New(cfg utils.Config, out io.Writer) (Renderer, error) {
	switch cfg.Renderer {
	case utils.RendererTerminal:
		t := NewSimpleTerminal(out)
		t.ClearScreen = cfg.ClearScreen
		t.MaxFrames = cfg.MaxFrames
		return t, nil
	case utils.RendererTUI:
		palette, err := configPalette(cfg)
		if err != nil {
			return nil, err
		}
		ch, _ := utf8.DecodeRuneInString(cfg.CellChar)
		if ch == utf8.RuneError {
			ch = '#'
		}
		return NewCharacterCell(palette, ch), nil
	case utils.RendererWindow:
		palette, err := configPalette(cfg)
		if err != nil {
			return nil, err
		}
		return NewWindow(palette, cfg.Scale, cfg.TPS), nil
	default:
		return nil, errors.Wrapf(utils.ErrUnknownRenderer, "[New] renderer %q", cfg.Renderer)
	}
}

func configPalette(cfg utils.Config) (Palette, error) {
	palette, err := ParsePalette(cfg.CellColor, cfg.CellBackgroundColor, cfg.BackgroundColor)
	if err != nil {
		return palette, errors.Wrapf(err, "[New] invalid palette for %s renderer", cfg.Renderer)
	}
	return palette, nil
}
