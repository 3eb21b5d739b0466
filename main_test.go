package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseArgsDefaults(t *testing.T) {
	config, path, err := parseArgs("life", []string{"glider.txt"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if path != "glider.txt" {
		t.Fatalf("path = %q", path)
	}
	if config.Interval != 300*time.Millisecond || config.Renderer != utils.RendererTUI {
		t.Fatalf("unexpected defaults: %+v", config)
	}
}

func TestParseArgsFlagsOverrideConfigFile(t *testing.T) {
	configPath := writeFile(t, "config.json", `{"renderer": "window", "interval": 100000000, "width": 9}`)

	config, path, err := parseArgs("life", []string{"-config", configPath, "-renderer", "terminal"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q, want none", path)
	}
	if config.Renderer != utils.RendererTerminal {
		t.Fatalf("flag did not override file: renderer = %q", config.Renderer)
	}
	if config.Interval != 100*time.Millisecond || config.Width != 9 {
		t.Fatalf("file values lost: %+v", config)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"bad renderer", []string{"-renderer", "piston"}},
		{"two files", []string{"a.txt", "b.txt"}},
		{"missing config", []string{"-config", "/does/not/exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseArgs("life", tt.args, &bytes.Buffer{}); err == nil {
				t.Fatalf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	var out bytes.Buffer
	_, _, err := parseArgs("life", []string{"-h"}, &out)
	if errors.Cause(err) != flag.ErrHelp {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "usage: life") {
		t.Fatalf("usage not printed:\n%s", out.String())
	}
}

func TestBuildInitialGridFromFile(t *testing.T) {
	path := writeFile(t, "grid.txt", "oo_\n___\n")

	grid, err := buildInitialGrid(utils.DefaultConfig(), path)
	if err != nil {
		t.Fatalf("buildInitialGrid: %v", err)
	}
	if grid.String() != "oo_\n___\n" {
		t.Fatalf("grid =\n%s", grid)
	}
}

func TestBuildInitialGridErrors(t *testing.T) {
	if _, err := buildInitialGrid(utils.DefaultConfig(), filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("missing file accepted")
	}
	if _, err := buildInitialGrid(utils.DefaultConfig(), writeFile(t, "ragged.txt", "ooo\no\n")); err == nil {
		t.Fatalf("ragged file accepted")
	}
}

func TestBuildInitialGridRandom(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 20, 12

	a, err := buildInitialGrid(config, "")
	if err != nil {
		t.Fatalf("buildInitialGrid: %v", err)
	}
	b, _ := buildInitialGrid(config, "")
	if a.GetWidth() != 20 || a.GetHeight() != 12 {
		t.Fatalf("size = %dx%d", a.GetWidth(), a.GetHeight())
	}
	if !a.Equal(b) {
		t.Fatalf("same seed gave different grids")
	}
}

func TestDispatcherOptions(t *testing.T) {
	config := utils.DefaultConfig()
	if n := len(dispatcherOptions(config, nil)); n != 1 {
		t.Fatalf("got %d options, want 1", n)
	}

	config.Parallel = true
	if n := len(dispatcherOptions(config, log.New(&bytes.Buffer{}, "", 0))); n != 3 {
		t.Fatalf("got %d options, want 3", n)
	}
}
