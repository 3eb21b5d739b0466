package render

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

// fillGridRGBA converts the grid into RGBA pixels in buf, one pixel per cell
// in row-major order. buf must hold 4*width*height bytes.
func fillGridRGBA(buf []byte, grid *model.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := grid.GetWidth()
	for y, row := range grid.Rows() {
		for x, c := range row.Cells() {
			base := (y*w + x) * 4
			if c.IsAlive() {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
