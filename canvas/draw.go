package canvas

import (
	"image/color"
	"math"
)

// Line strokes a segment. Segments that fail validation are dropped.
// A zero-length segment in range draws a single pixel.
func (m *Image) Line(a, b Point, c color.RGBA, width int) {
	if m == nil || !ValidSegment(m.w, m.h, a, b) {
		return
	}
	x0, y0 := pixel(a)
	x1, y1 := pixel(b)
	if width <= 1 {
		m.bresenham(x0, y0, x1, y1, c)
		return
	}
	// Replicate the stroke across the minor axis for thickness.
	half := width / 2
	if absInt(x1-x0) >= absInt(y1-y0) {
		for o := -half; o < width-half; o++ {
			m.bresenham(x0, y0+o, x1, y1+o, c)
		}
	} else {
		for o := -half; o < width-half; o++ {
			m.bresenham(x0+o, y0, x1+o, y1, c)
		}
	}
}

// Polygon strokes or fills a closed shape. Shapes that fail validation
// are dropped. Fill assumes convex input, which covers every shape the
// engines emit (triangles and quads).
func (m *Image) Polygon(pts []Point, c color.RGBA, filled bool) {
	if m == nil || !ValidPolygon(m.w, m.h, pts) {
		return
	}
	if !filled {
		for i := range pts {
			ax, ay := pixel(pts[i])
			bx, by := pixel(pts[(i+1)%len(pts)])
			m.bresenham(ax, ay, bx, by, c)
		}
		return
	}
	x0, y0 := pixel(pts[0])
	for i := 1; i+1 < len(pts); i++ {
		x1, y1 := pixel(pts[i])
		x2, y2 := pixel(pts[i+1])
		m.fillTriangle(x0, y0, x1, y1, x2, y2, c)
	}
}

// FillRect fills an axis-aligned rectangle, clipped to the raster.
func (m *Image) FillRect(r Rect, c color.RGBA) {
	if m == nil {
		return
	}
	if !finite(r.X) || !finite(r.Y) || !finite(r.W) || !finite(r.H) {
		return
	}
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.W))
	y1 := int(math.Round(r.Y + r.H))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.w {
		x1 = m.w
	}
	if y1 > m.h {
		y1 = m.h
	}
	for y := y0; y < y1; y++ {
		i := m.rgba.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			p := m.rgba.Pix[i : i+4 : i+4]
			p[0] = c.R
			p[1] = c.G
			p[2] = c.B
			p[3] = c.A
			i += 4
		}
	}
}

func (m *Image) bresenham(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		m.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (m *Image) fillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= m.w {
		maxX = m.w - 1
	}
	if maxY >= m.h {
		maxY = m.h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			m.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
