//go:build !ebiten

package render

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
)

// Window is a placeholder for the graphical renderer in headless builds.
type Window struct{}

// NewWindow returns a Window whose Draw always fails.
func NewWindow(Palette, int, int) *Window {
	return &Window{}
}

// Draw always reports that the GUI build tag is missing.
func (r *Window) Draw(<-chan *dispatcher.Handle) error {
	return errors.New("window renderer requires building with the 'ebiten' tag")
}
