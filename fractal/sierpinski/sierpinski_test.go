package sierpinski

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fractoscope/canvas"
)

var ink = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

var corners = [3]canvas.Point{
	{X: 128, Y: 4},
	{X: 252, Y: 252},
	{X: 4, Y: 252},
}

func TestTriangleLeafCount(t *testing.T) {
	for depth := 0; depth <= 5; depth++ {
		count := 0
		Triangle(func(canvas.Polygon) { count++ },
			corners[0], corners[1], corners[2], depth, TriangleOptions{Color: ink})
		want := 1
		for i := 0; i < depth; i++ {
			want *= 3
		}
		if count != want {
			t.Fatalf("depth %d emitted %d leaves; want %d", depth, count, want)
		}
	}
}

func TestTriangleMinSizePrunes(t *testing.T) {
	// Corners span 248 pixels, so a 1000px floor prunes the root
	// before anything is emitted.
	count := 0
	Triangle(func(canvas.Polygon) { count++ },
		corners[0], corners[1], corners[2], 6, TriangleOptions{MinSize: 1000, Color: ink})
	if count != 0 {
		t.Fatalf("oversized floor emitted %d leaves; want 0", count)
	}

	// A floor of 100 lets the first split through (extent 124) and
	// nothing further.
	count = 0
	Triangle(func(canvas.Polygon) { count++ },
		corners[0], corners[1], corners[2], 1, TriangleOptions{MinSize: 100, Color: ink})
	if count != 3 {
		t.Fatalf("floored split emitted %d leaves; want 3", count)
	}
}

func TestTriangleDepthOneMidpoints(t *testing.T) {
	var leaves []canvas.Polygon
	p1 := canvas.Point{X: 0, Y: 0}
	p2 := canvas.Point{X: 8, Y: 0}
	p3 := canvas.Point{X: 0, Y: 8}
	Triangle(func(p canvas.Polygon) { leaves = append(leaves, p) }, p1, p2, p3, 1,
		TriangleOptions{Color: ink})

	if len(leaves) != 3 {
		t.Fatalf("depth 1 emitted %d leaves; want 3", len(leaves))
	}
	want := [][]canvas.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}},
		{{X: 4, Y: 0}, {X: 8, Y: 0}, {X: 4, Y: 4}},
		{{X: 0, Y: 4}, {X: 4, Y: 4}, {X: 0, Y: 8}},
	}
	for i, leafPts := range want {
		if diff := cmp.Diff(leafPts, leaves[i].Points); diff != "" {
			t.Fatalf("leaf %d vertices mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestTriangleVariantsColorLeaves(t *testing.T) {
	byVariant := map[Variant]color.RGBA{}
	for _, v := range []Variant{Outline, Filled, Gradient, Multicolor} {
		var first canvas.Polygon
		got := false
		Triangle(func(p canvas.Polygon) {
			if !got {
				first = p
				got = true
			}
		}, corners[0], corners[1], corners[2], 3, TriangleOptions{Variant: v, Color: ink})
		if !got {
			t.Fatalf("variant %d emitted nothing", v)
		}
		filled := v == Filled || v == Gradient
		if first.Filled != filled {
			t.Fatalf("variant %d filled = %v; want %v", v, first.Filled, filled)
		}
		byVariant[v] = first.Color
	}
	if byVariant[Gradient] == byVariant[Multicolor] {
		t.Fatalf("gradient and multicolor leaves share color %v", byVariant[Gradient])
	}
}

func TestMulticolorRotatesSiblings(t *testing.T) {
	var leaves []canvas.Polygon
	Triangle(func(p canvas.Polygon) { leaves = append(leaves, p) },
		corners[0], corners[1], corners[2], 1, TriangleOptions{Variant: Multicolor})
	if len(leaves) != 3 {
		t.Fatalf("depth 1 emitted %d leaves; want 3", len(leaves))
	}
	// Cyan, magenta, yellow dimmed to 90% one level down.
	want := []color.RGBA{
		{G: 229, B: 229, A: 0xFF},
		{R: 229, B: 229, A: 0xFF},
		{R: 229, G: 229, A: 0xFF},
	}
	for i, leaf := range leaves {
		if leaf.Color != want[i] {
			t.Fatalf("sibling %d color %v; want %v", i, leaf.Color, want[i])
		}
	}
}

func TestChaosGameWarmupSkipsPlotting(t *testing.T) {
	m := canvas.NewImage(64, 64)
	ChaosGame(m, [3]canvas.Point{{X: 2, Y: 60}, {X: 62, Y: 60}, {X: 32, Y: 2}},
		chaosWarmup, ink, rand.New(rand.NewSource(1)))
	if lit := countLit(m); lit != 0 {
		t.Fatalf("warm-up iterations plotted %d pixels; want 0", lit)
	}
}

func TestChaosGameStaysInHull(t *testing.T) {
	m := canvas.NewImage(64, 64)
	v := [3]canvas.Point{{X: 2, Y: 60}, {X: 62, Y: 60}, {X: 32, Y: 2}}
	ChaosGame(m, v, 5000, ink, rand.New(rand.NewSource(7)))

	if lit := countLit(m); lit == 0 {
		t.Fatalf("chaos game plotted nothing")
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if m.At(x, y).A == 0 {
				continue
			}
			if !inTriangle(float64(x), float64(y), v, 1.5) {
				t.Fatalf("plotted point (%d, %d) escapes the vertex hull", x, y)
			}
		}
	}
}

func TestChaosGameDeterministic(t *testing.T) {
	v := [3]canvas.Point{{X: 2, Y: 60}, {X: 62, Y: 60}, {X: 32, Y: 2}}
	a := canvas.NewImage(64, 64)
	b := canvas.NewImage(64, 64)
	ChaosGame(a, v, 3000, ink, rand.New(rand.NewSource(42)))
	ChaosGame(b, v, 3000, ink, rand.New(rand.NewSource(42)))
	if diff := cmp.Diff(a.RGBA().Pix, b.RGBA().Pix); diff != "" {
		t.Fatalf("equal seeds diverged:\n%s", diff)
	}
}

func TestCarpetDepthTwoLeaves(t *testing.T) {
	m := canvas.NewImage(81, 81)
	Carpet(m, 0, 0, 81, 2, ink)

	// 64 leaf squares of side 9.
	if lit := countLit(m); lit != 64*81 {
		t.Fatalf("carpet lit %d pixels; want %d", lit, 64*81)
	}
	if m.At(40, 40).A != 0 {
		t.Fatalf("carpet center hole is filled")
	}
	if m.At(4, 4).A == 0 {
		t.Fatalf("carpet corner cell is empty")
	}
	// Second-level holes.
	if m.At(13, 13).A != 0 {
		t.Fatalf("sub-carpet hole at (13, 13) is filled")
	}
}

func TestDrawCarpetCapsDepthToResolution(t *testing.T) {
	// A 30px carpet resolves two levels before the prune floor; a
	// depth-6 request must still render instead of pruning everything.
	m := canvas.NewImage(120, 90)
	DrawCarpet(m, 6)
	if countLit(m) == 0 {
		t.Fatal("deep carpet rendered blank")
	}
}

func TestDrawRecursiveDepths(t *testing.T) {
	for _, depth := range []int{1, 3, 5, 7} {
		m := canvas.NewImage(512, 512)
		Draw(m, Options{Depth: depth})
		if countLit(m) == 0 {
			t.Fatalf("depth %d draw lit nothing", depth)
		}
	}
}

func TestDrawDepthZeroPrunedByFloor(t *testing.T) {
	m := canvas.NewImage(128, 128)
	Draw(m, Options{Depth: 0})
	if lit := countLit(m); lit != 0 {
		t.Fatalf("depth 0 lit %d pixels; want 0, the root sits below the resolution floor", lit)
	}
}

func TestDrawSwitchesToChaosPastDepthSeven(t *testing.T) {
	a := canvas.NewImage(128, 128)
	b := canvas.NewImage(128, 128)
	Draw(a, Options{Depth: 8, Seed: 42})
	Draw(b, Options{Depth: 8, Seed: 42})
	if countLit(a) == 0 {
		t.Fatalf("depth 8 draw lit nothing")
	}
	if diff := cmp.Diff(a.RGBA().Pix, b.RGBA().Pix); diff != "" {
		t.Fatalf("chaos draw with equal seeds diverged:\n%s", diff)
	}
}

// inTriangle reports whether (x, y) lies inside the triangle, allowing
// tol pixels of slop for rounding.
func inTriangle(x, y float64, v [3]canvas.Point, tol float64) bool {
	dist := func(a, b canvas.Point) float64 {
		l := math.Hypot(b.X-a.X, b.Y-a.Y)
		if l == 0 {
			return 0
		}
		return ((b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)) / l
	}
	d1 := dist(v[0], v[1])
	d2 := dist(v[1], v[2])
	d3 := dist(v[2], v[0])
	neg := d1 < -tol || d2 < -tol || d3 < -tol
	pos := d1 > tol || d2 > tol || d3 > tol
	return !(neg && pos)
}

func countLit(m *canvas.Image) int {
	w, h := m.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.At(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}
