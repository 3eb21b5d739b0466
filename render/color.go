package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is an opaque 8-bit-per-channel colour
type Color struct {
	R, G, B uint8
}

// Hex builds a colour from a 0xRRGGBB value
func Hex(v uint32) Color {
	return Color{
		R: uint8((v >> 16) & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8(v & 0xFF),
	}
}

// ClampRGB builds a colour from signed channels, clamping each to [0, 255]
func ClampRGB(r, g, b int16) Color {
	clamp := func(v int16) uint8 {
		switch {
		case v < 0:
			return 0
		case v > 0xFF:
			return 0xFF
		default:
			return uint8(v)
		}
	}
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// ParseHex parses "#rrggbb" or "rrggbb"
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return Color{}, errors.Errorf("[ParseHex] colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "[ParseHex] colour %q is not #rrggbb", s)
	}
	return Hex(uint32(v)), nil
}

// ParseColor parses "#rrggbb" / "rrggbb" or a decimal "r,g,b" triple.
// Triple channels outside [0, 255] are clamped.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		return ParseHex(s)
	}
	if len(parts) != 3 {
		return Color{}, errors.Errorf("[ParseColor] colour %q is not #rrggbb or r,g,b", s)
	}

	var channels [3]int16
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return Color{}, errors.Wrapf(err, "[ParseColor] colour %q is not #rrggbb or r,g,b", s)
		}
		channels[i] = int16(v)
	}
	return ClampRGB(channels[0], channels[1], channels[2]), nil
}

// RGBA converts to the image/color model
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Palette holds the colours renderers paint the grid with
type Palette struct {
	Cell           Color
	CellBackground Color
	Background     Color
}

// DefaultPalette is magenta cells on blue over a black background
var DefaultPalette = Palette{
	Cell:           Hex(0xC000C0),
	CellBackground: Hex(0x0000C0),
	Background:     Hex(0x000000),
}

// ParsePalette parses the three colours of a palette, see ParseColor
func ParsePalette(cell, cellBackground, background string) (Palette, error) {
	var (
		p   Palette
		err error
	)
	if p.Cell, err = ParseColor(cell); err != nil {
		return p, errors.Wrap(err, "[ParsePalette] cell colour")
	}
	if p.CellBackground, err = ParseColor(cellBackground); err != nil {
		return p, errors.Wrap(err, "[ParsePalette] cell background colour")
	}
	if p.Background, err = ParseColor(background); err != nil {
		return p, errors.Wrap(err, "[ParsePalette] background colour")
	}
	return p, nil
}
