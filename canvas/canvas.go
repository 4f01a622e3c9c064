// Package canvas provides the raster surface the fractal engines draw
// into: a minimal pixel target plus segment, polygon and rectangle
// primitives with per-primitive bounds validation.
package canvas

import "image/color"

// Point is a position in raster coordinates. Y grows downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Segment is a straight stroke between two points.
type Segment struct {
	A, B  Point
	Color color.RGBA
	Width int
}

// Polygon is a closed shape, stroked or filled.
type Polygon struct {
	Points []Point
	Color  color.RGBA
	Filled bool
}

// Canvas is a minimal pixel target for software rendering.
//
// Implementations must clip out-of-range coordinates and silently drop
// primitives that fail validation; drawing never fails.
type Canvas interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
	Line(a, b Point, c color.RGBA, width int)
	Polygon(pts []Point, c color.RGBA, filled bool)
	FillRect(r Rect, c color.RGBA)
}
