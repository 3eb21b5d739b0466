package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const usage = `usage: life [flags] [grid-file]

The grid file holds one line per row; 'o' marks a living cell and every
other character a dead one. Without a file a random grid is generated.

`

// parseArgs builds the configuration from defaults, an optional -config JSON
// file and finally the remaining flags, and returns the grid file argument.
func parseArgs(name string, args []string, output io.Writer) (utils.Config, string, error) {
	config := utils.DefaultConfig()

	newFlagSet := func(config *utils.Config) (*flag.FlagSet, *string) {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(output)
		fs.Usage = func() {
			fmt.Fprint(fs.Output(), usage)
			fs.PrintDefaults()
		}
		configPath := fs.String("config", "", "JSON config file; flags override its values")
		config.Bind(fs)
		return fs, configPath
	}

	fs, configPath := newFlagSet(&config)
	if err := fs.Parse(args); err != nil {
		return config, "", errors.Wrap(err, "[parseArgs] invalid flags")
	}

	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			return config, "", err
		}
		config = loaded

		// Parse again so command-line flags win over the file.
		fs, _ = newFlagSet(&config)
		if err := fs.Parse(args); err != nil {
			return config, "", errors.Wrap(err, "[parseArgs] invalid flags")
		}
	}

	if err := config.Validate(); err != nil {
		return config, "", err
	}
	if fs.NArg() > 1 {
		return config, "", errors.Errorf("[parseArgs] expected at most one grid file, got %d", fs.NArg())
	}

	return config, fs.Arg(0), nil
}

// buildInitialGrid loads the grid file, or seeds a random grid when no file
// is given
func buildInitialGrid(config utils.Config, path string) (*model.Grid, error) {
	if path != "" {
		return model.ReadGridFromFile(path)
	}

	grid := model.NewGrid(config.Width, config.Height)
	grid.ResetWithInterestingPatterns(config.RandomDensity, model.NewRNG(config.Seed))
	return grid, nil
}

// dispatcherOptions translates the config into dispatcher options. logger may
// be nil to keep the dispatcher quiet.
func dispatcherOptions(config utils.Config, logger *log.Logger) []dispatcher.Option {
	opts := []dispatcher.Option{dispatcher.WithInterval(config.Interval)}
	if config.Parallel {
		opts = append(opts, dispatcher.WithParallel(config.Workers))
	}
	if logger != nil {
		opts = append(opts, dispatcher.WithLogger(logger, config.LogStats))
	}
	return opts
}

// displayGameInfo shows the initial game information
func displayGameInfo(logger *log.Logger, config utils.Config, grid *model.Grid, path string) {
	source := path
	if source == "" {
		source = fmt.Sprintf("random (seed %d, density %.2f)", config.Seed, config.RandomDensity)
	}
	logger.Printf("Grid: %dx%d from %s | Initial living cells: %d",
		grid.GetWidth(), grid.GetHeight(), source, grid.CountLivingCells())
	logger.Printf("Renderer: %s | Interval: %v | Parallel: %v",
		config.Renderer, config.Interval, config.Parallel)
}

// displayFinalStats summarises the run once the renderer has stopped
func displayFinalStats(logger *log.Logger, stats utils.Stats) {
	logger.Printf("Final stats: %d generations in %.1f seconds | Avg Pop: %.1f",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.AveragePopulation)
}
