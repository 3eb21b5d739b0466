package render

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/model"
)

const clearCmd = "clear"

// SimpleTerminal prints every frame as plain text: 'o' for living cells, '_'
// for dead ones, and two blank lines between frames.
type SimpleTerminal struct {
	out io.Writer

	// ClearScreen runs `clear` before each frame
	ClearScreen bool
	// MaxFrames stops drawing after that many frames; 0 draws forever
	MaxFrames int
}

// NewSimpleTerminal writes frames to out
func NewSimpleTerminal(out io.Writer) *SimpleTerminal {
	return &SimpleTerminal{out: out}
}

// Draw renders every handle it receives
func (r *SimpleTerminal) Draw(handles <-chan *dispatcher.Handle) error {
	var buf bytes.Buffer
	for frames := 0; r.MaxFrames <= 0 || frames < r.MaxFrames; frames++ {
		h, ok := <-handles
		if !ok {
			return errors.Wrapf(ErrDisconnected, "[SimpleTerminal.Draw] after %d frames", frames)
		}

		if r.ClearScreen {
			r.Clear()
		}

		buf.Reset()
		h.Read(func(grid *model.Grid, _ int) {
			writeFrame(&buf, grid)
		})

		if _, err := r.out.Write(buf.Bytes()); err != nil {
			return errors.Wrap(err, "[SimpleTerminal.Draw] failed to write frame")
		}
	}
	return nil
}

// Clear clears the terminal screen
func (r *SimpleTerminal) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	// A missing `clear` binary just leaves old frames on screen.
	_ = cmd.Run()
}

func writeFrame(buf *bytes.Buffer, grid *model.Grid) {
	for _, row := range grid.Rows() {
		for _, cell := range row.Cells() {
			if cell.IsAlive() {
				buf.WriteByte(model.AliveChar)
			} else {
				buf.WriteByte(model.DeadChar)
			}
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("\n\n")
}
