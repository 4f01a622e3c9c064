// Package sierpinski renders the Sierpinski family: recursive triangle
// subdivision, the chaos game and the carpet.
package sierpinski

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"

	"tinygo.org/x/tinyfont/proggy"

	"fractoscope/canvas"
	"fractoscope/fractal/palette"
)

// Emit receives each leaf shape in drawing order.
type Emit func(canvas.Polygon)

// Variant selects how leaf triangles are drawn.
type Variant uint8

const (
	Outline Variant = iota
	Filled
	Gradient
	Multicolor

	variantCount
)

var variantNames = [variantCount]string{"outline", "filled", "gradient", "multicolor"}

func (v Variant) String() string {
	if v >= variantCount {
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a style name, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range variantNames {
		if s == n {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown triangle style: %q", name)
}

// chaosWarmup is how many initial chaos-game steps are discarded while
// the walk falls onto the attractor.
const chaosWarmup = 20

// Options configure the adaptive Draw entry.
type Options struct {
	Depth   int
	Variant Variant
	Seed    int64
}

// TriangleOptions configure the subdivision recursion.
type TriangleOptions struct {
	Variant Variant
	MinSize float64 // longest-extent floor in pixels; 0 disables
	Color   color.RGBA
}

// Triangle subdivides recursively, emitting up to 3^depth leaf
// triangles. Sub-triangles whose longest extent falls below MinSize
// are pruned outright, whatever depth remains.
func Triangle(emit Emit, p1, p2, p3 canvas.Point, depth int, opt TriangleOptions) {
	triangle(emit, p1, p2, p3, depth, 0, 0, opt)
}

func triangle(emit Emit, p1, p2, p3 canvas.Point, depth, idx, level int, opt TriangleOptions) {
	size := extent(p1, p2, p3)
	if opt.MinSize > 0 && size < opt.MinSize {
		return
	}
	if depth <= 0 {
		emit(leaf(p1, p2, p3, idx, level, size, opt))
		return
	}
	m12 := midpoint(p1, p2)
	m23 := midpoint(p2, p3)
	m31 := midpoint(p3, p1)
	triangle(emit, p1, m12, m31, depth-1, idx, level+1, opt)
	triangle(emit, m12, p2, m23, depth-1, idx+1, level+1, opt)
	triangle(emit, m31, m23, p3, depth-1, idx+2, level+1, opt)
}

// wheel is the sibling color rotation for the multicolor variant.
var wheel = [6]color.RGBA{
	{G: 255, B: 255, A: 0xFF},
	{R: 255, B: 255, A: 0xFF},
	{R: 255, G: 255, A: 0xFF},
	{R: 255, G: 128, A: 0xFF},
	{R: 128, G: 255, B: 128, A: 0xFF},
	{R: 255, G: 128, B: 255, A: 0xFF},
}

func leaf(p1, p2, p3 canvas.Point, idx, level int, size float64, opt TriangleOptions) canvas.Polygon {
	pts := []canvas.Point{p1, p2, p3}
	switch opt.Variant {
	case Filled:
		return canvas.Polygon{Points: pts, Color: opt.Color, Filled: true}
	case Gradient:
		// Bigger leaves glow brighter.
		i := size * 2
		if i < 50 {
			i = 50
		} else if i > 255 {
			i = 255
		}
		v := uint8(i)
		return canvas.Polygon{Points: pts, Color: color.RGBA{R: v, G: v / 2, B: 255 - v/2, A: 0xFF}, Filled: true}
	case Multicolor:
		// Deeper levels dim their slot of the wheel.
		f := 1 - float64(level)*0.1
		if f < 0.3 {
			f = 0.3
		}
		return canvas.Polygon{Points: pts, Color: palette.Lerp(color.RGBA{A: 0xFF}, wheel[idx%len(wheel)], f)}
	default:
		return canvas.Polygon{Points: pts, Color: opt.Color}
	}
}

// ChaosGame plots n half-steps toward randomly chosen vertices,
// starting near the triangle's centroid. The first chaosWarmup
// positions are skipped while the walk converges onto the attractor.
func ChaosGame(c canvas.Canvas, v [3]canvas.Point, n int, col color.RGBA, rng *rand.Rand) {
	if c == nil || rng == nil || n <= 0 {
		return
	}
	minX := math.Min(v[0].X, math.Min(v[1].X, v[2].X))
	maxX := math.Max(v[0].X, math.Max(v[1].X, v[2].X))
	minY := math.Min(v[0].Y, math.Min(v[1].Y, v[2].Y))
	maxY := math.Max(v[0].Y, math.Max(v[1].Y, v[2].Y))

	x := (v[0].X+v[1].X+v[2].X)/3 + (rng.Float64()-0.5)*(maxX-minX)/2
	y := (v[0].Y+v[1].Y+v[2].Y)/3 + (rng.Float64()-0.5)*(maxY-minY)/2
	for i := 0; i < n; i++ {
		target := v[rng.Intn(3)]
		x = (x + target.X) / 2
		y = (y + target.Y) / 2
		if i < chaosWarmup {
			continue
		}
		c.SetPixel(int(math.Round(x)), int(math.Round(y)), col)
	}
}

// Carpet recursively fills the 3×3 subdivision of a square, skipping
// the center cell of every split. Cells below two pixels are pruned.
func Carpet(c canvas.Canvas, x, y, size float64, depth int, col color.RGBA) {
	if c == nil || size < 2 {
		return
	}
	if depth <= 0 {
		c.FillRect(canvas.Rect{X: x, Y: y, W: size, H: size}, col)
		return
	}
	sub := size / 3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == 1 && j == 1 {
				continue
			}
			Carpet(c, x+float64(j)*sub, y+float64(i)*sub, sub, depth-1, col)
		}
	}
}

// DrawCarpet renders the carpet centered in the raster. The depth is
// capped where leaf cells would fall under the two-pixel prune floor,
// so deep requests still produce the densest carpet the raster can
// resolve.
func DrawCarpet(c canvas.Canvas, depth int) {
	w, h := c.Size()
	side := math.Min(float64(w), float64(h)) - 60
	if side < 9 {
		side = math.Min(float64(w), float64(h))
	}
	for depth > 0 && side < 2*math.Pow(3, float64(depth)) {
		depth--
	}
	x := (float64(w) - side) / 2
	y := (float64(h) - side) / 2
	Carpet(c, x, y, side, depth, color.RGBA{R: 222, G: 184, B: 95, A: 0xFF})
}

// Draw renders the adaptive triangle composition: midpoint subdivision
// up to depth seven, then the chaos game with an iteration budget that
// grows with depth.
func Draw(c canvas.Canvas, opt Options) {
	w, h := c.Size()
	fw, fh := float64(w), float64(h)

	if opt.Depth > 7 {
		n := opt.Depth * 8000
		if n > 100000 {
			n = 100000
		}
		rng := rand.New(rand.NewSource(opt.Seed))
		ChaosGame(c, vertices(fw, fh, 0.75), n, color.RGBA{G: 255, A: 0xFF}, rng)
		canvas.WriteLine(c, &proggy.TinySZ8pt7b, 8, 8,
			fmt.Sprintf("chaos game, %d points", n-chaosWarmup),
			color.RGBA{R: 255, G: 180, B: 0, A: 0xFF})
		return
	}

	minSize := math.Max(1, math.Min(fw, fh)/math.Pow(3, math.Min(float64(opt.Depth), 6)))
	v := vertices(fw, fh, 0.8)
	emit := func(p canvas.Polygon) { c.Polygon(p.Points, p.Color, p.Filled) }
	Triangle(emit, v[0], v[1], v[2], opt.Depth, TriangleOptions{
		Variant: opt.Variant,
		MinSize: minSize,
		Color:   shade(opt.Depth),
	})
}

// vertices centers an equilateral triangle spanning frac of the
// raster's short side.
func vertices(fw, fh, frac float64) [3]canvas.Point {
	size := math.Min(fw, fh) * frac
	ht := size * math.Sqrt(3) / 2
	cx, cy := fw/2, fh/2
	return [3]canvas.Point{
		{X: cx, Y: cy - ht*0.667},
		{X: cx - size/2, Y: cy + ht*0.333},
		{X: cx + size/2, Y: cy + ht*0.333},
	}
}

// shade dims the outline tone as depth grows, bottoming out well above
// the background.
func shade(depth int) color.RGBA {
	v := 255 - 15*depth
	if v < 150 {
		v = 150
	}
	return color.RGBA{R: uint8(v), G: uint8(v), B: 255, A: 0xFF}
}

func midpoint(a, b canvas.Point) canvas.Point {
	return canvas.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func extent(p1, p2, p3 canvas.Point) float64 {
	minX := math.Min(p1.X, math.Min(p2.X, p3.X))
	maxX := math.Max(p1.X, math.Max(p2.X, p3.X))
	minY := math.Min(p1.Y, math.Min(p2.Y, p3.Y))
	maxY := math.Max(p1.Y, math.Max(p2.Y, p3.Y))
	return math.Max(maxX-minX, maxY-minY)
}
