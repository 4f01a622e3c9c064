package canvas

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// displayer bridges a Canvas to the pixel interface tinyfont draws on.
type displayer struct {
	c Canvas
}

var _ drivers.Displayer = displayer{}

func (d displayer) Size() (x, y int16) {
	w, h := d.c.Size()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.c.SetPixel(int(x), int(y), c)
}

func (d displayer) Display() error { return nil }

// WriteLine burns one line of bitmap text into the canvas, so saved
// rasters carry the overlay. The y coordinate is the top of the glyph
// box, not the baseline.
func WriteLine(c Canvas, font tinyfont.Fonter, x, y int, s string, col color.RGBA) {
	if c == nil || font == nil {
		return
	}
	tinyfont.WriteLine(displayer{c: c}, font, int16(x), int16(y)+int16(font.GetYAdvance()), s, col)
}

// LineWidth returns the pixel width of s in the given font.
func LineWidth(font tinyfont.Fonter, s string) int {
	if font == nil {
		return 0
	}
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}
