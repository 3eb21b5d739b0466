package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer names accepted by Config.Renderer
const (
	RendererTerminal = "terminal"
	RendererTUI      = "tui"
	RendererWindow   = "window"
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// Config holds the configuration for the simulation and its renderer
type Config struct {
	Interval time.Duration `json:"interval"`
	Renderer string        `json:"renderer"`
	Parallel bool          `json:"parallel"`
	Workers  int           `json:"workers"`
	LogStats bool          `json:"log_stats"`

	// Random seeding, used when no grid file is given
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	RandomDensity float64 `json:"random_density"`
	Seed          int64   `json:"seed"`

	// Terminal renderers
	CellChar            string `json:"cell_char"`
	CellColor           string `json:"cell_color"`
	CellBackgroundColor string `json:"cell_background_color"`
	BackgroundColor     string `json:"background_color"`
	ClearScreen         bool   `json:"clear_screen"`
	MaxFrames           int    `json:"max_frames"`

	// Window renderer
	Scale int `json:"scale"`
	TPS   int `json:"tps"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Interval:            300 * time.Millisecond,
		Renderer:            RendererTUI,
		Parallel:            false,
		Workers:             0, // one per CPU when Parallel is set
		Width:               60,
		Height:              30,
		RandomDensity:       0.15,
		Seed:                42,
		CellChar:            "#",
		CellColor:           "#c000c0",
		CellBackgroundColor: "#0000c0",
		BackgroundColor:     "#000000",
		Scale:               8,
		TPS:                 60,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet. Flags override
// whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&c.Interval, "interval", c.Interval, "pause between generations")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer: terminal, tui or window")
	fs.BoolVar(&c.Parallel, "parallel", c.Parallel, "step the grid with parallel workers")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers (0 = one per CPU)")
	fs.BoolVar(&c.LogStats, "log-stats", c.LogStats, "log statistics for every generation")
	fs.IntVar(&c.Width, "width", c.Width, "random grid width when no file is given")
	fs.IntVar(&c.Height, "height", c.Height, "random grid height when no file is given")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "random grid density when no file is given")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random grid seed")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the screen between frames (terminal renderer)")
	fs.IntVar(&c.MaxFrames, "frames", c.MaxFrames, "stop after this many frames (terminal renderer, 0 = forever)")
	fs.StringVar(&c.CellChar, "cell-char", c.CellChar, "character drawn for each cell (tui renderer)")
	fs.StringVar(&c.CellColor, "cell-color", c.CellColor, "living cell colour, #rrggbb or r,g,b")
	fs.StringVar(&c.CellBackgroundColor, "cell-bg-color", c.CellBackgroundColor, "living cell background colour (tui renderer)")
	fs.StringVar(&c.BackgroundColor, "bg-color", c.BackgroundColor, "dead cell / background colour")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (window renderer)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (window renderer)")
}

// Validate reports the first setting that cannot be used
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTerminal, RendererTUI, RendererWindow:
	default:
		return errors.Wrapf(ErrUnknownRenderer, "[Validate] renderer %q", c.Renderer)
	}
	if c.Interval <= 0 {
		return errors.Errorf("[Validate] interval must be positive, got %v", c.Interval)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	return nil
}
