package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/model"
)

// queued returns a closed channel holding n copies of a handle to grid
func queued(grid *model.Grid, n int) <-chan *dispatcher.Handle {
	h := dispatcher.New(grid).Handle()
	ch := make(chan *dispatcher.Handle, n)
	for range n {
		ch <- h
	}
	close(ch)
	return ch
}

func sampleGrid() *model.Grid {
	g := model.NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(1, 0, true)
	return g
}

const sampleFrame = "oo_\n___\n\n\n"

func TestSimpleTerminalDisconnect(t *testing.T) {
	var out bytes.Buffer
	r := NewSimpleTerminal(&out)

	err := r.Draw(queued(sampleGrid(), 2))
	if errors.Cause(err) != ErrDisconnected {
		t.Fatalf("Draw() = %v, want ErrDisconnected", err)
	}
	if got, want := out.String(), sampleFrame+sampleFrame; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSimpleTerminalMaxFrames(t *testing.T) {
	var out bytes.Buffer
	r := NewSimpleTerminal(&out)
	r.MaxFrames = 1

	if err := r.Draw(queued(sampleGrid(), 3)); err != nil {
		t.Fatalf("Draw() = %v, want nil", err)
	}
	if out.String() != sampleFrame {
		t.Fatalf("output = %q, want one frame", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSimpleTerminalWriteError(t *testing.T) {
	r := NewSimpleTerminal(failingWriter{})
	err := r.Draw(queued(sampleGrid(), 1))
	if err == nil || errors.Cause(err) == ErrDisconnected {
		t.Fatalf("Draw() = %v, want write error", err)
	}
}

func TestSimpleTerminalWithDispatcher(t *testing.T) {
	g := model.NewGrid(5, 5)
	g.AddOscillator(1, 2)
	horizontal := g.String()
	g.Iterate()
	vertical := g.String()
	g.Iterate()

	d := dispatcher.New(g, dispatcher.WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	r := NewSimpleTerminal(&out)
	r.MaxFrames = 4
	if err := r.Draw(d.Start(ctx)); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	frames := strings.Split(strings.TrimSuffix(out.String(), "\n\n\n"), "\n\n\n")
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4:\n%s", len(frames), out.String())
	}
	for i, frame := range frames {
		frame += "\n"
		if frame != horizontal && frame != vertical {
			t.Fatalf("frame %d is not a blinker phase:\n%s", i, frame)
		}
	}
}
