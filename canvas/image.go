package canvas

import (
	"image"
	"image/color"
)

// Image is a Canvas backed by an in-memory RGBA raster.
//
// Create it once per target size and reuse it across renders.
type Image struct {
	w, h int
	rgba *image.RGBA
}

// NewImage creates a canvas of the given size, or nil if either
// dimension is smaller than one pixel.
func NewImage(w, h int) *Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	return &Image{w: w, h: h, rgba: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (m *Image) Size() (w, h int) {
	if m == nil {
		return 0, 0
	}
	return m.w, m.h
}

// SetPixel writes one pixel. Out-of-range coordinates are ignored.
func (m *Image) SetPixel(x, y int, c color.RGBA) {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := m.rgba.PixOffset(x, y)
	p := m.rgba.Pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// At reads one pixel back. Out-of-range coordinates return zero.
func (m *Image) At(x, y int) color.RGBA {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return color.RGBA{}
	}
	i := m.rgba.PixOffset(x, y)
	p := m.rgba.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Clear fills the whole raster with one color.
func (m *Image) Clear(c color.RGBA) {
	if m == nil {
		return
	}
	pix := m.rgba.Pix
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for i := 4; i < len(pix); i *= 2 {
		copy(pix[i:], pix[:i])
	}
}

// RGBA exposes the backing raster for blitting and PNG encoding.
func (m *Image) RGBA() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.rgba
}
