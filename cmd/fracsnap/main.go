// Command fracsnap renders one fractal to a PNG without opening a
// window. It exposes the whole engine surface, including the knobs the
// viewer only reaches through key bindings.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"

	"fractoscope/canvas"
	"fractoscope/config"
	"fractoscope/fractal"
	"fractoscope/fractal/palette"
	"fractoscope/fractal/sierpinski"
	"fractoscope/fractal/tree"
)

func main() {
	var (
		name    = flag.String("fractal", "koch", "Fractal to render: koch|sierpinski|carpet|mandelbrot|julia|tree.")
		depth   = flag.Int("depth", -1, "Recursion depth or escape budget (-1 = configured limit).")
		width   = flag.Int("width", 1000, "Raster width in pixels.")
		height  = flag.Int("height", 800, "Raster height in pixels.")
		pal     = flag.String("palette", "default", "Color ramp: default|fire|ocean|psychedelic.")
		style   = flag.String("style", "gradient", "Triangle style: outline|filled|gradient|multicolor.")
		species = flag.String("species", "", "Tree species; empty keeps the depth-keyed styles.")
		branch  = flag.String("branch", "", "Branch palette for the styled tree: default|gradient|spring|autumn|winter|neon|fire.")
		season  = flag.String("season", "", "Season for the seasonal tree.")
		random  = flag.Float64("random", -1, "Branch randomness 0..1; 0 or more picks the stochastic tree.")
		wind    = flag.Float64("wind", 0, "Wind strength 0..1; above zero bends the tree.")
		zoom    = flag.Float64("zoom", 1, "Escape-time zoom factor.")
		ox      = flag.Float64("ox", 0, "Escape-time view offset, real axis.")
		oy      = flag.Float64("oy", 0, "Escape-time view offset, imaginary axis.")
		morph   = flag.Float64("morph", -1, "Mandelbrot-to-Julia blend 0..1 (-1 = off).")
		seed    = flag.Int64("seed", 0, "Seed for the stochastic variants (0 = stock seed).")
		smooth  = flag.Bool("smooth", true, "Smooth escape-time coloring.")
		workers = flag.Int("workers", 0, "Row goroutines for the plane sets (0 = NumCPU).")
		out     = flag.String("o", "", "Output PNG path (default <fractal>_<depth>.png).")
		cfgPath = flag.String("config", config.DefaultPath, "Viewer configuration, read for depth caps.")
	)
	flag.Parse()

	kind, err := fractal.ParseKind(*name)
	if err != nil {
		fatalf("%v", err)
	}
	if *width <= 0 || *height <= 0 {
		fatalf("raster size out of range: %dx%d", *width, *height)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatalf("%v", err)
	}
	d := *depth
	if d < 0 {
		d = cfg.DepthLimit(kind)
	}

	p := fractal.Params{
		Depth:   d,
		Zoom:    *zoom,
		OffsetX: *ox,
		OffsetY: *oy,
		Smooth:  *smooth,
		Workers: *workers,
		Seed:    *seed,
	}
	if p.Palette, err = palette.ParseMode(*pal); err != nil {
		fatalf("%v", err)
	}
	if p.Style, err = sierpinski.ParseVariant(*style); err != nil {
		fatalf("%v", err)
	}

	// Tree flags layer: species or branch picks a styled tree, season a
	// seasonal one, randomness a stochastic one and wind overrides them
	// all.
	if *branch != "" {
		if p.Branch, err = palette.ParseBranchMode(*branch); err != nil {
			fatalf("%v", err)
		}
		p.Variant = tree.VariantStyled
	}
	if *species != "" {
		if p.Species, err = tree.ParseSpecies(*species); err != nil {
			fatalf("%v", err)
		}
		p.Variant = tree.VariantStyled
		if *branch == "" {
			p.Branch = palette.BranchGradient
		}
	}
	if *season != "" {
		if p.Season, err = tree.ParseSeason(*season); err != nil {
			fatalf("%v", err)
		}
		p.Variant = tree.VariantSeasonal
	}
	if *random >= 0 {
		if *random > 1 {
			fatalf("random out of range: %g", *random)
		}
		p.Variant = tree.VariantStochastic
		p.Randomness = *random
	}
	if *wind > 0 {
		if *wind > 1 {
			fatalf("wind out of range: %g", *wind)
		}
		p.Variant = tree.VariantWind
		p.Wind = tree.WindOptions{Strength: *wind}
	}
	if *morph >= 0 {
		if *morph > 1 {
			fatalf("morph out of range: %g", *morph)
		}
		p.Morph, p.MorphMode = *morph, true
	}

	img := canvas.NewImage(*width, *height)
	if err := fractal.Render(context.Background(), img, kind, p); err != nil {
		fatalf("render: %v", err)
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("%s_%d.png", kind, d)
	}
	if err := writePNG(path, img); err != nil {
		fatalf("%v", err)
	}
	fmt.Println(path)
}

func writePNG(path string, img *canvas.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img.RGBA()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
