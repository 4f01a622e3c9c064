package escape

import (
	"context"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fractoscope/canvas"
	"fractoscope/fractal/palette"
)

// View frames an escape-time render on the complex plane.
type View struct {
	Zoom    float64 // 1 frames the whole set
	OffsetX float64
	OffsetY float64
	C       complex128 // Julia constant; zero picks DefaultJuliaC
	Iter    int        // escape budget per pixel
	Smooth  bool
	Workers int // row goroutines; 0 picks NumCPU
	Palette palette.Mode
}

// Region is an axis-aligned window on the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// RegionFor maps a view onto the plane window it shows. Zoom one spans
// the classic -2.5..1.5 by -1.5..1.5 frame.
func RegionFor(v View) Region {
	z := v.Zoom
	if z <= 0 {
		z = 1
	}
	return Region{
		Xmin: -2.5/z + v.OffsetX,
		Xmax: 1.5/z + v.OffsetX,
		Ymin: -1.5/z + v.OffsetY,
		Ymax: 1.5/z + v.OffsetY,
	}
}

// Mandelbrot paints the set onto the raster. Each pixel seeds c and
// the orbit starts at the origin.
func Mandelbrot(ctx context.Context, cv canvas.Canvas, v View) error {
	r := RegionFor(v)
	return renderRows(ctx, cv, v, func(x, y, w, h int) (complex128, complex128) {
		cr := r.Xmin + (r.Xmax-r.Xmin)*float64(x)/float64(w)
		ci := r.Ymin + (r.Ymax-r.Ymin)*float64(y)/float64(h)
		return 0, complex(cr, ci)
	})
}

// Julia paints the Julia set of the view's constant. Each pixel seeds
// the orbit; the constant stays fixed across the raster.
func Julia(ctx context.Context, cv canvas.Canvas, v View) error {
	k := v.C
	if k == 0 {
		k = DefaultJuliaC
	}
	z := v.Zoom
	if z <= 0 {
		z = 1
	}
	return renderRows(ctx, cv, v, func(x, y, w, h int) (complex128, complex128) {
		zx := 1.5*(float64(x)-float64(w)/2)/(0.5*float64(w)*z) + v.OffsetX
		zy := (float64(y)-float64(h)/2)/(0.5*float64(h)*z) + v.OffsetY
		return complex(zx, zy), k
	})
}

// Morph blends the Mandelbrot framing into a Julia set. Below one half
// the pixel seeds c as usual; past it the pixel seeds the orbit and c
// follows the morph constant. The blend always renders psychedelic and
// caps the budget lower than the still views.
func Morph(ctx context.Context, cv canvas.Canvas, v View, factor float64) error {
	k := complex(-0.7+0.4*factor, 0.27015*factor)
	v.Palette = palette.Psychedelic
	if v.Iter > 200 {
		v.Iter = 200
	}
	return renderRows(ctx, cv, v, func(x, y, w, h int) (complex128, complex128) {
		re := 3 * (float64(x) - float64(w)/2) / (0.5 * float64(w))
		im := 2 * (float64(y) - float64(h)/2) / (0.5 * float64(h))
		if factor < 0.5 {
			return 0, complex(re, im)
		}
		return complex(re, im), k
	})
}

// renderRows splits the raster into rows and colors them in parallel.
// Rows never overlap, so workers write disjoint pixels.
func renderRows(ctx context.Context, cv canvas.Canvas, v View, point func(x, y, w, h int) (complex128, complex128)) error {
	w, h := cv.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	iter := clampIter(v.Iter)
	workers := v.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < w; x++ {
				z, c := point(x, y, w, h)
				cv.SetPixel(x, y, shade(z, c, iter, v))
			}
			return nil
		})
	}
	return g.Wait()
}

// shade colors one pixel through the shared orbit kernel.
func shade(z, c complex128, iter int, v View) color.RGBA {
	if v.Smooth {
		return palette.EscapeSmooth(Smooth(z, c, iter), iter, v.Palette)
	}
	n, _ := Orbit(z, c, iter)
	return palette.Escape(n, iter, v.Palette)
}

// clampIter keeps the escape budget inside the range the views can
// afford interactively.
func clampIter(n int) int {
	if n < 10 {
		return 10
	}
	if n > 1000 {
		return 1000
	}
	return n
}
