package viewer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform accumulates the view-space scale, rotation and pan applied
// when the rendered raster is blitted. It never touches the raster
// itself, so cached renders stay valid across any amount of panning.
type Transform struct {
	Scale   float64
	Angle   float64 // degrees, normalized to [0, 360)
	OffsetX float64
	OffsetY float64
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{Scale: 1}
}

// ScaleBy multiplies the current scale by factor. Steps that would
// leave the [0.1, 50] range are refused outright rather than clamped,
// so repeated zooming sticks at the last legal value.
func (t *Transform) ScaleBy(factor float64) {
	next := t.Scale * factor
	if next < 0.1 || next > 50 {
		return
	}
	t.Scale = next
}

// Rotate adds deg to the current angle, wrapping into [0, 360).
func (t *Transform) Rotate(deg float64) {
	t.Angle = math.Mod(t.Angle+deg, 360)
	if t.Angle < 0 {
		t.Angle += 360
	}
}

// Translate pans the view by (dx, dy) screen pixels.
func (t *Transform) Translate(dx, dy float64) {
	t.OffsetX += dx
	t.OffsetY += dy
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	t.Scale = 1
	t.Angle = 0
	t.OffsetX = 0
	t.OffsetY = 0
}

// Identity reports whether the transform leaves the raster untouched.
func (t *Transform) Identity() bool {
	return t.Scale == 1 && t.Angle == 0 && t.OffsetX == 0 && t.OffsetY == 0
}

// GeoM builds the blit matrix for a raster of w by h pixels: scale and
// rotate about the raster center, then translate the center back plus
// the pan offset.
func (t *Transform) GeoM(w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(w)/2, -float64(h)/2)
	g.Scale(t.Scale, t.Scale)
	g.Rotate(t.Angle * math.Pi / 180)
	g.Translate(float64(w)/2+t.OffsetX, float64(h)/2+t.OffsetY)
	return g
}
