package canvas

import "math"

// ValidSegment reports whether both endpoints are finite and round into
// the raster range [0, w] by [0, h]. Out-of-range geometry is a per-
// primitive drop decision, never an error.
func ValidSegment(w, h int, a, b Point) bool {
	return validPoint(w, h, a) && validPoint(w, h, b)
}

// ValidPolygon reports whether every vertex is finite and in range and
// at least three rounded vertices are distinct. A triangle whose corners
// collapse onto each other after rounding is dropped.
func ValidPolygon(w, h int, pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	for _, p := range pts {
		if !validPoint(w, h, p) {
			return false
		}
	}
	seen := make(map[[2]int]struct{}, len(pts))
	for _, p := range pts {
		x, y := pixel(p)
		seen[[2]int{x, y}] = struct{}{}
	}
	return len(seen) >= 3
}

func validPoint(w, h int, p Point) bool {
	if !finite(p.X) || !finite(p.Y) {
		return false
	}
	x, y := pixel(p)
	return x >= 0 && x <= w && y >= 0 && y <= h
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func pixel(p Point) (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
