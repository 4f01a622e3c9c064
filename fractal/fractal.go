// Package fractal dispatches rendering across the built-in fractal
// families. Validation is strict: a bad kind, canvas or depth fails
// before the first pixel lands, and a failed render never disturbs
// the raster.
package fractal

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"fractoscope/canvas"
	"fractoscope/fractal/escape"
	"fractoscope/fractal/koch"
	"fractoscope/fractal/palette"
	"fractoscope/fractal/sierpinski"
	"fractoscope/fractal/tree"
)

// Kind identifies one of the built-in fractal families. The set is
// closed; rendering dispatches by value and rejects anything else.
type Kind uint8

const (
	Koch Kind = iota
	Sierpinski
	Carpet
	Mandelbrot
	Julia
	Tree
	kindCount
)

var kindNames = [kindCount]string{"koch", "sierpinski", "carpet", "mandelbrot", "julia", "tree"}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds lists every kind in dispatch order.
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// MaxDepth is the ceiling Render enforces before recursion starts. For
// the escape-time kinds the depth is the iteration budget.
func (k Kind) MaxDepth() int {
	switch k {
	case Koch:
		return 7
	case Sierpinski:
		return 8
	case Carpet:
		return 6
	case Mandelbrot, Julia:
		return 1000
	case Tree:
		return 15
	default:
		return 0
	}
}

// Escape reports whether the kind renders on the complex plane. Those
// renders recompute per request and are never worth caching.
func (k Kind) Escape() bool {
	return k == Mandelbrot || k == Julia
}

// Params carry every knob a render can use. Fields irrelevant to the
// chosen kind are ignored.
type Params struct {
	Depth   int // recursion depth, or escape budget for the plane sets
	Palette palette.Mode

	// Escape-time framing.
	Zoom      float64
	OffsetX   float64
	OffsetY   float64
	Smooth    bool
	Workers   int
	Morph     float64 // Mandelbrot-to-Julia blend, 0..1
	MorphMode bool    // render the blend instead of the still set

	// Sierpinski triangle styling.
	Style sierpinski.Variant

	// Tree styling.
	Variant    tree.Variant
	Species    tree.Species
	Season     tree.Season
	Branch     palette.BranchMode
	Randomness float64
	Seed       int64
	Wind       tree.WindOptions
}

// Render validates the request, clears the canvas to transparent and
// paints the kind. The escape-time kinds honor ctx cancellation; the
// recursive kinds are bounded by their depth ceiling and finish fast.
func Render(ctx context.Context, c canvas.Canvas, kind Kind, p Params) error {
	if kind >= kindCount {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
	if c == nil {
		return ErrNilCanvas
	}
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyRaster, w, h)
	}
	if p.Depth < 0 || p.Depth > kind.MaxDepth() {
		return fmt.Errorf("%w: %d for %s (0..%d)", ErrDepthRange, p.Depth, kind, kind.MaxDepth())
	}

	c.Clear(color.RGBA{})

	switch kind {
	case Koch:
		koch.Draw(c, p.Depth)
	case Sierpinski:
		sierpinski.Draw(c, sierpinski.Options{Depth: p.Depth, Variant: p.Style, Seed: p.Seed})
	case Carpet:
		sierpinski.DrawCarpet(c, p.Depth)
	case Mandelbrot:
		if p.MorphMode {
			return escape.Morph(ctx, c, escapeView(p), p.Morph)
		}
		return escape.Mandelbrot(ctx, c, escapeView(p))
	case Julia:
		if p.MorphMode {
			return escape.Morph(ctx, c, escapeView(p), p.Morph)
		}
		return escape.Julia(ctx, c, escapeView(p))
	case Tree:
		tree.Draw(c, tree.Options{
			Depth:      p.Depth,
			Variant:    p.Variant,
			Species:    p.Species,
			Season:     p.Season,
			Mode:       p.Branch,
			Randomness: p.Randomness,
			Seed:       p.Seed,
			Wind:       p.Wind,
		})
	}
	return nil
}

func escapeView(p Params) escape.View {
	return escape.View{
		Zoom:    p.Zoom,
		OffsetX: p.OffsetX,
		OffsetY: p.OffsetY,
		Iter:    p.Depth,
		Smooth:  p.Smooth,
		Workers: p.Workers,
		Palette: p.Palette,
	}
}
