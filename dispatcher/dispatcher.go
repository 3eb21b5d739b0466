// Package dispatcher owns a live grid and steps it on a fixed cadence while
// publishing shared handles to it for concurrent readers.
package dispatcher

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// DefaultInterval is the pause between publishing a handle and the next step
const DefaultInterval = 300 * time.Millisecond

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithInterval overrides DefaultInterval
func WithInterval(interval time.Duration) Option {
	return func(d *Dispatcher) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// WithParallel steps the grid with IterateParallel using the given number of
// workers (<= 0 means one per CPU).
func WithParallel(workers int) Option {
	return func(d *Dispatcher) {
		d.parallel = true
		d.workers = workers
	}
}

// WithLogger enables extinction / stagnation messages. With verbose set,
// every generation is logged as well.
func WithLogger(logger *log.Logger, verbose bool) Option {
	return func(d *Dispatcher) {
		d.logger = logger
		d.verbose = verbose
	}
}

// Dispatcher is the sole writer of a grid. Once started it loops forever:
// publish a handle, sleep, take the write lock, step, release.
type Dispatcher struct {
	handle   *Handle
	interval time.Duration
	parallel bool
	workers  int

	logger  *log.Logger
	verbose bool

	statsMu  sync.Mutex
	stats    *utils.Stats
	lastStep time.Time

	history model.History
	extinct bool
	settled bool

	startOnce sync.Once
	out       chan *Handle
	eg        *errgroup.Group
}

// New wraps grid for shared access. The caller must not touch grid directly
// afterwards; go through Handle instead.
func New(grid *model.Grid, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handle:   newHandle(grid),
		interval: DefaultInterval,
		stats:    utils.NewStats(),
		out:      make(chan *Handle),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Create starts a dispatcher for grid that runs until the process exits and
// returns the channel its handles are published on.
func Create(grid *model.Grid, opts ...Option) <-chan *Handle {
	return New(grid, opts...).Start(context.Background())
}

// Handle returns the shared handle to the live grid
func (d *Dispatcher) Handle() *Handle {
	return d.handle
}

// Start launches the background loop and returns the handle channel. The
// channel has no capacity limit: handles pile up while nobody receives. When
// ctx is cancelled the loop stops and the channel is closed after the queued
// handles are drained. Calling Start again returns the same channel.
func (d *Dispatcher) Start(ctx context.Context) <-chan *Handle {
	d.startOnce.Do(func() {
		in := make(chan *Handle)
		d.eg, ctx = errgroup.WithContext(ctx)
		d.eg.Go(func() error {
			relay(in, d.out)
			return nil
		})
		d.eg.Go(func() error {
			defer close(in)
			return d.loop(ctx, in)
		})
	})
	return d.out
}

// Wait blocks until the loop has stopped and the channel has been closed,
// returning the reason the loop ended.
func (d *Dispatcher) Wait() error {
	if d.eg == nil {
		return nil
	}
	return d.eg.Wait()
}

// Stats returns a copy of the current generation statistics
func (d *Dispatcher) Stats() utils.Stats {
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	return *d.stats
}

func (d *Dispatcher) loop(ctx context.Context, in chan<- *Handle) error {
	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	for {
		select {
		case in <- d.handle:
		case <-ctx.Done():
			return ctx.Err()
		}

		timer.Reset(d.interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}

		d.step()
	}
}

func (d *Dispatcher) step() {
	var (
		population int
		hash       string
	)

	generation := d.handle.write(func(grid *model.Grid) {
		if d.parallel {
			grid.IterateParallel(d.workers)
		} else {
			grid.Iterate()
		}
		population = grid.CountLivingCells()
		if d.logger != nil {
			hash = grid.GetGridHash()
		}
	})

	now := time.Now()
	d.statsMu.Lock()
	var elapsed time.Duration
	if !d.lastStep.IsZero() {
		elapsed = now.Sub(d.lastStep)
	}
	d.lastStep = now
	d.stats.Update(generation, population, elapsed)
	stats := *d.stats
	d.statsMu.Unlock()

	if d.logger != nil {
		d.report(generation, population, hash, stats)
	}
}

// report logs state changes once each rather than on every generation
func (d *Dispatcher) report(generation, population int, hash string, stats utils.Stats) {
	if d.verbose {
		d.logger.Printf("Gen: %d | Living: %d | %.1f gen/sec | Avg Pop: %.1f",
			generation, population, stats.GenerationsPerSecond, stats.AveragePopulation)
	}

	if population == 0 {
		if !d.extinct {
			d.logger.Printf("generation %d: grid is extinct", generation)
		}
		d.extinct = true
	} else {
		d.extinct = false
	}

	if d.history.Observe(hash) {
		if !d.settled && population > 0 {
			d.logger.Printf("generation %d: grid settled into a still life or short cycle", generation)
		}
		d.settled = true
	} else {
		d.settled = false
	}
}
