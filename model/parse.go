package model

import (
	"bufio"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// AliveChar marks a living cell in grid files; every other character is dead
	AliveChar = 'o'
	// DeadChar is what the grid writes for dead cells
	DeadChar = '_'
)

var (
	ErrEmptyGrid  = errors.New("grid input has no lines")
	ErrRaggedRow  = errors.New("grid row width differs from the first row")
	ErrEmptyWidth = errors.New("first grid row is empty")
)

// ReadGridFromFile loads a grid from a text file. See ParseGrid.
func ReadGridFromFile(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadGridFromFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadGridFromFile] failed to parse file: %+v", filename)
	}
	return grid, nil
}

// ParseGrid builds a grid from lines of text. The width is the character
// count of the first line and the height is the number of lines; 'o' marks a
// living cell. Every line must be exactly as wide as the first.
func ParseGrid(r io.Reader) (*Grid, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to read input")
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, ErrEmptyWidth
	}

	grid := NewGrid(width, len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, errors.Wrapf(ErrRaggedRow, "[ParseGrid] line %d has %d characters, want %d", y+1, n, width)
		}

		x := 0
		for _, ch := range line {
			*grid.Cell(x, y) = Cell{}.WithAlive(ch == AliveChar)
			x++
		}
	}

	return grid, nil
}
