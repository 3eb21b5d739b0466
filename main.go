package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/dispatcher"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	logger := log.New(os.Stderr, "life: ", log.LstdFlags)

	config, path, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Cause(err) == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		logger.Fatalf("%v", err)
	}

	grid, err := buildInitialGrid(config, path)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	renderer, err := render.New(config, os.Stdout)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	displayGameInfo(logger, config, grid, path)

	// The TUI owns the terminal, so the dispatcher stays quiet there.
	var simLogger *log.Logger
	if config.Renderer != utils.RendererTUI {
		simLogger = logger
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := dispatcher.New(grid, dispatcherOptions(config, simLogger)...)
	err = renderer.Draw(d.Start(ctx))

	interrupted := ctx.Err() != nil
	stop()

	if err != nil && !(interrupted && errors.Cause(err) == render.ErrDisconnected) {
		logger.Fatalf("%v", err)
	}
	displayFinalStats(logger, d.Stats())
}
