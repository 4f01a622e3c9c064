// Package koch renders the Koch curve and snowflake by recursive
// four-way subdivision.
package koch

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/tinyfont/proggy"

	"fractoscope/canvas"
)

// Emit receives each generated segment in drawing order.
type Emit func(canvas.Segment)

// Curve subdivides a→b, emitting 4^depth segments. The apex of each
// middle third sits one equilateral height off the base; a zero-length
// base yields a zero offset rather than failing.
func Curve(emit Emit, a, b canvas.Point, depth int, col color.RGBA, width int) {
	if depth <= 0 {
		emit(canvas.Segment{A: a, B: b, Color: col, Width: width})
		return
	}

	dx := (b.X - a.X) / 3
	dy := (b.Y - a.Y) / 3
	p1 := canvas.Point{X: a.X + dx, Y: a.Y + dy}
	p2 := canvas.Point{X: a.X + 2*dx, Y: a.Y + 2*dy}

	mid := canvas.Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	apex := mid
	if side := math.Hypot(dx, dy); side > 0 {
		// Unit perpendicular of the middle third. For a left-to-right
		// base this points up in screen coordinates, and outward when
		// the snowflake walks its vertices in order.
		px := (p2.Y - p1.Y) / side
		py := -(p2.X - p1.X) / side
		h := side * math.Sqrt(3) / 2
		apex = canvas.Point{X: mid.X + px*h, Y: mid.Y + py*h}
	}

	Curve(emit, a, p1, depth-1, col, width)
	Curve(emit, p1, apex, depth-1, col, width)
	Curve(emit, apex, p2, depth-1, col, width)
	Curve(emit, p2, b, depth-1, col, width)
}

// Snowflake composes three curves around an equilateral triangle whose
// first vertex sits at the top of the circumscribed circle.
func Snowflake(emit Emit, center canvas.Point, radius float64, depth int, col color.RGBA, width int) {
	var v [3]canvas.Point
	for i := range v {
		ang := (-90 + 120*float64(i)) * math.Pi / 180
		v[i] = canvas.Point{
			X: center.X + radius*math.Cos(ang),
			Y: center.Y + radius*math.Sin(ang),
		}
	}
	Curve(emit, v[0], v[1], depth, col, width)
	Curve(emit, v[1], v[2], depth, col, width)
	Curve(emit, v[2], v[0], depth, col, width)
}

// SegmentCount returns the number of segments one curve emits: 4^depth.
func SegmentCount(depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= 4
	}
	return n
}

// Draw renders the adaptive composition: a single horizontal curve for
// depths up to four, the full snowflake beyond. Depths past six burn a
// segment-count note into the raster.
func Draw(c canvas.Canvas, depth int) {
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	margin := 0.1 * math.Min(fw, fh)
	width := lineWidth(w, depth)
	emit := func(s canvas.Segment) { c.Line(s.A, s.B, s.Color, s.Width) }

	segments := 0
	if depth <= 4 {
		a := canvas.Point{X: margin, Y: fh * 0.5}
		b := canvas.Point{X: fw - margin, Y: fh * 0.5}
		Curve(emit, a, b, depth, shade(depth), width)
		segments = SegmentCount(depth)
	} else {
		center := canvas.Point{X: fw / 2, Y: fh / 2}
		radius := 0.35 * math.Min(fw, fh)
		Snowflake(emit, center, radius, depth-4, color.RGBA{G: 255, B: 255, A: 0xFF}, width)
		segments = 3 * SegmentCount(depth-4)
	}

	if depth > 6 {
		note := fmt.Sprintf("%d segments", segments)
		canvas.WriteLine(c, &proggy.TinySZ8pt7b, 8, 8, note, color.RGBA{R: 255, G: 180, B: 0, A: 0xFF})
	}
}

// lineWidth starts from a stroke suited to the raster width and thins
// it as the subdivision deepens.
func lineWidth(w, depth int) int {
	base := w / 400
	if base < 1 {
		base = 1
	} else if base > 3 {
		base = 3
	}
	lw := base - depth/3
	if lw < 1 {
		return 1
	}
	return lw
}

// shade washes the curve's blue toward white as depth grows.
func shade(depth int) color.RGBA {
	v := 120 + 25*depth
	if v > 255 {
		v = 255
	}
	return color.RGBA{R: uint8(v), G: uint8(v), B: 0xFF, A: 0xFF}
}
