package escape

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fractoscope/canvas"
	"fractoscope/fractal/palette"
)

func TestOrbitStaysBounded(t *testing.T) {
	for _, c := range []complex128{0, -1, complex(-0.12, 0.75)} {
		if n, _ := Orbit(0, c, 100); n != 100 {
			t.Fatalf("Orbit(0, %v, 100) escaped at %d; want bounded", c, n)
		}
	}
}

func TestIterationsKnownPoints(t *testing.T) {
	tests := []struct {
		c    complex128
		max  int
		want int
	}{
		{complex(2, 2), 50, 1},
		{complex(-2.5, 0), 50, 1},
		{complex(0.5, 0), 100, 5},
		{complex(0, 0), 64, 64},
		{complex(-1, 0), 64, 64},
	}
	for _, tt := range tests {
		if got := Iterations(tt.c, tt.max); got != tt.want {
			t.Fatalf("Iterations(%v, %d) = %d; want %d", tt.c, tt.max, got, tt.want)
		}
	}
}

func TestSmoothReturnsBudgetInSet(t *testing.T) {
	if got := Smooth(0, 0, 64); got != 64 {
		t.Fatalf("Smooth(0, 0, 64) = %v; want 64", got)
	}
}

func TestSmoothBracketsEscapeStep(t *testing.T) {
	for _, c := range []complex128{
		complex(0.5, 0),
		complex(0.26, 0),
		complex(2, 2),
		complex(-2.5, 0),
	} {
		n := Iterations(c, 1000)
		if n >= 1000 {
			t.Fatalf("point %v unexpectedly bounded", c)
		}
		mu := Smooth(0, c, 1000)
		if mu <= float64(n) || mu >= float64(n)+2 {
			t.Fatalf("Smooth(0, %v, 1000) = %v; want inside (%d, %d)", c, mu, n, n+2)
		}
	}
}

func TestJuliaIterationsKnownPoints(t *testing.T) {
	// A seed outside the disc never enters the loop.
	if got := JuliaIterations(complex(2, 2), DefaultJuliaC, 50); got != 0 {
		t.Fatalf("far seed took %d steps; want 0", got)
	}
	if got := JuliaIterations(complex(1, 1), 0, 50); got != 2 {
		t.Fatalf("JuliaIterations(1+i, 0, 50) = %d; want 2", got)
	}
	if got := JuliaIterations(complex(0.5, 0), 0, 50); got != 50 {
		t.Fatalf("bounded seed escaped at %d; want budget 50", got)
	}
	// A zero seed reduces to the Mandelbrot count for the same constant.
	for _, c := range []complex128{complex(0.5, 0), complex(-1, 0), DefaultJuliaC} {
		if got, want := JuliaIterations(0, c, 200), Iterations(c, 200); got != want {
			t.Fatalf("JuliaIterations(0, %v) = %d; Iterations = %d", c, got, want)
		}
	}
}

func TestSmoothGrowsTowardTheSet(t *testing.T) {
	// Walking the real axis toward the boundary at c = 0.25 raises both
	// the raw count and the fractional value at every step.
	points := []complex128{complex(2, 2), 2, 1, complex(0.5, 0), complex(0.3, 0), complex(0.26, 0)}
	prevN := -1
	prevMu := -1.0
	for _, c := range points {
		n := Iterations(c, 1000)
		if n >= 1000 {
			t.Fatalf("point %v unexpectedly bounded", c)
		}
		mu := Smooth(0, c, 1000)
		if n <= prevN {
			t.Fatalf("Iterations(%v) = %d; want above %d", c, n, prevN)
		}
		if mu <= prevMu {
			t.Fatalf("Smooth(%v) = %v; want above %v", c, mu, prevMu)
		}
		prevN, prevMu = n, mu
	}
}

func TestRegionForFramesClassicWindow(t *testing.T) {
	want := Region{Xmin: -2.5, Xmax: 1.5, Ymin: -1.5, Ymax: 1.5}
	if got := RegionFor(View{Zoom: 1}); got != want {
		t.Fatalf("RegionFor(zoom 1) = %+v; want %+v", got, want)
	}
	// Zero zoom normalizes to one.
	if got := RegionFor(View{}); got != want {
		t.Fatalf("RegionFor(zoom 0) = %+v; want %+v", got, want)
	}

	got := RegionFor(View{Zoom: 2, OffsetX: 0.5, OffsetY: -0.25})
	want = Region{Xmin: -0.75, Xmax: 1.25, Ymin: -1, Ymax: 0.5}
	if got != want {
		t.Fatalf("RegionFor(zoom 2, pan) = %+v; want %+v", got, want)
	}
}

func TestMandelbrotWorkerCountInvariant(t *testing.T) {
	v := View{Zoom: 1, Iter: 40, Palette: palette.Fire}
	render := func(workers int) []uint8 {
		img := canvas.NewImage(80, 60)
		v := v
		v.Workers = workers
		if err := Mandelbrot(context.Background(), img, v); err != nil {
			t.Fatalf("Mandelbrot with %d workers: %v", workers, err)
		}
		return img.RGBA().Pix
	}
	if diff := cmp.Diff(render(1), render(7)); diff != "" {
		t.Fatalf("worker count changed the raster:\n%s", diff)
	}
}

func TestMandelbrotOriginPixelIsBlack(t *testing.T) {
	// Pixel (50, 30) of an 80x60 zoom-1 frame lands exactly on c = 0,
	// which never escapes.
	for _, smooth := range []bool{false, true} {
		img := canvas.NewImage(80, 60)
		v := View{Zoom: 1, Iter: 30, Smooth: smooth, Workers: 2, Palette: palette.Ocean}
		if err := Mandelbrot(context.Background(), img, v); err != nil {
			t.Fatalf("Mandelbrot(smooth %v): %v", smooth, err)
		}
		want := color.RGBA{A: 0xFF}
		if got := img.At(50, 30); got != want {
			t.Fatalf("smooth %v: in-set pixel = %v; want %v", smooth, got, want)
		}
	}
}

func TestJuliaWorkerCountInvariant(t *testing.T) {
	render := func(workers int) []uint8 {
		img := canvas.NewImage(80, 60)
		v := View{Zoom: 1, Iter: 40, Smooth: true, Workers: workers}
		if err := Julia(context.Background(), img, v); err != nil {
			t.Fatalf("Julia with %d workers: %v", workers, err)
		}
		return img.RGBA().Pix
	}
	if diff := cmp.Diff(render(1), render(5)); diff != "" {
		t.Fatalf("worker count changed the raster:\n%s", diff)
	}
}

func TestJuliaPaintsEscapeBands(t *testing.T) {
	img := canvas.NewImage(64, 48)
	if err := Julia(context.Background(), img, View{Iter: 60}); err != nil {
		t.Fatalf("Julia: %v", err)
	}
	colored := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			c := img.At(x, y)
			if c.R != 0 || c.G != 0 || c.B != 0 {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Fatalf("Julia raster is entirely black")
	}
}

func TestMorphEndpointsDiffer(t *testing.T) {
	render := func(factor float64) []uint8 {
		img := canvas.NewImage(64, 48)
		if err := Morph(context.Background(), img, View{Iter: 50}, factor); err != nil {
			t.Fatalf("Morph(%v): %v", factor, err)
		}
		return img.RGBA().Pix
	}
	if diff := cmp.Diff(render(0), render(0)); diff != "" {
		t.Fatalf("repeated morph render diverged:\n%s", diff)
	}
	if cmp.Equal(render(0), render(1)) {
		t.Fatalf("morph endpoints render identically")
	}
}

func TestRenderHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := canvas.NewImage(32, 32)
	err := Mandelbrot(ctx, img, View{Iter: 50, Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled render returned %v; want context.Canceled", err)
	}
}

func TestRenderSkipsEmptyRaster(t *testing.T) {
	var img *canvas.Image
	if err := Mandelbrot(context.Background(), img, View{Iter: 50}); err != nil {
		t.Fatalf("empty raster returned %v; want nil", err)
	}
}

func TestLandmarkOffsetsRecenter(t *testing.T) {
	for _, l := range Landmarks {
		zoom, ox, oy := l.Offsets()
		r := RegionFor(View{Zoom: zoom, OffsetX: ox, OffsetY: oy})
		cx := (r.Xmin + r.Xmax) / 2
		cy := (r.Ymin + r.Ymax) / 2
		if !closeTo(cx, l.CenterX) || !closeTo(cy, l.CenterY) {
			t.Fatalf("%s recentered at (%v, %v); want (%v, %v)", l.Name, cx, cy, l.CenterX, l.CenterY)
		}
	}
}

func TestClampIter(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 10},
		{-3, 10},
		{10, 10},
		{64, 64},
		{1000, 1000},
		{5000, 1000},
	}
	for _, tt := range tests {
		if got := clampIter(tt.in); got != tt.want {
			t.Fatalf("clampIter(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
