// Package viewer is the interactive front end: an ebiten window with a
// control panel on the left and the fractal raster filling the rest.
// The engine stays pure; everything stateful (transform, cache, perf
// window, snapshots) lives here and is owned by the App.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fractoscope/canvas"
	"fractoscope/config"
	"fractoscope/fractal"
	"fractoscope/fractal/escape"
	"fractoscope/fractal/palette"
	"fractoscope/fractal/sierpinski"
	"fractoscope/fractal/tree"
)

// Logger receives the viewer's occasional line-oriented messages:
// snapshot paths, config fallbacks, failed renders. The engine itself
// never logs.
type Logger interface {
	Printf(format string, args ...any)
}

// defaultDepth is the iteration count a fresh session starts at.
const defaultDepth = 3

// App runs the viewer. It implements ebiten.Game: Update polls input
// and re-renders the raster when the request changed, Draw blits the
// raster through the current transform and paints the chrome on top.
type App struct {
	log Logger
	cfg config.Config

	width  int
	height int

	kind  fractal.Kind
	depth int
	pal   palette.Mode

	species    tree.Species
	treeStyled bool // species picked explicitly; overrides the depth-keyed styles
	windOn     bool
	windClock  float64

	morphOn bool
	morph   float64

	landmark int

	transform *Transform
	cache     *renderCache
	perf      *perfMonitor
	snaps     *Snapshots
	panel     *panel

	raster  *canvas.Image
	display *ebiten.Image

	dirty    bool
	dragging bool
	dragX    int
	dragY    int

	lastFrame time.Time
}

// New builds the viewer from the loaded configuration. Unusable
// settings (unknown kind or palette, tiny window) fall back to the
// defaults with a logged note rather than failing startup.
func New(cfg config.Config, log Logger) *App {
	a := &App{
		log:       log,
		cfg:       cfg,
		width:     cfg.WindowWidth,
		height:    cfg.WindowHeight,
		depth:     defaultDepth,
		kind:      startKind(cfg, log),
		pal:       startPalette(cfg, log),
		transform: NewTransform(),
		cache:     newRenderCache(cacheCapacity),
		perf:      newPerfMonitor(),
		snaps:     NewSnapshots(cfg.ScreenshotDir),
		morph:     0.5,
		dirty:     true,
	}
	if a.width < PanelWidth+200 || a.height < 200 {
		def := config.Defaults()
		log.Printf("window %dx%d too small; using %dx%d", a.width, a.height, def.WindowWidth, def.WindowHeight)
		a.width, a.height = def.WindowWidth, def.WindowHeight
	}
	if a.depth > a.depthLimit() {
		a.depth = a.depthLimit()
	}
	a.panel = newPanel(a.setDepth)
	a.panel.rebuild(a.kind, a.depth, a.depthLimit())
	return a
}

func startKind(cfg config.Config, log Logger) fractal.Kind {
	k, err := fractal.ParseKind(cfg.DefaultKind)
	if err != nil {
		log.Printf("%v; starting with %s", err, fractal.Koch)
		return fractal.Koch
	}
	return k
}

func startPalette(cfg config.Config, log Logger) palette.Mode {
	if cfg.Palette == "" || cfg.Palette == "auto" {
		return palette.Default
	}
	m, err := palette.ParseMode(cfg.Palette)
	if err != nil {
		log.Printf("%v; starting with %s", err, palette.Default)
		return palette.Default
	}
	return m
}

// Size reports the logical window size after validation, for
// ebiten.SetWindowSize.
func (a *App) Size() (w, h int) {
	return a.width, a.height
}

func (a *App) Update() error {
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.perf.addFrame(now.Sub(a.lastFrame))
	}
	a.lastFrame = now

	a.panel.update()

	if err := a.handleKeys(); err != nil {
		return err
	}
	a.handleMouse()

	// The wind variant re-renders every tick while it blows; the clock
	// is the only thing that changes, so frames stay reproducible.
	if a.windOn && a.kind == fractal.Tree {
		a.windClock++
		a.dirty = true
	}

	if a.dirty {
		a.render()
		a.dirty = false
	}
	a.updateLabels()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if a.display != nil {
		w, h := a.raster.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = a.transform.GeoM(w, h)
		op.GeoM.Translate(PanelWidth, 0)
		screen.DrawImage(a.display, op)
	}

	// Panel chrome covers whatever the transform pushed under it.
	vector.DrawFilledRect(screen, 0, 0, PanelWidth, float32(a.height), colorPanelBG, false)
	vector.StrokeLine(screen, PanelWidth, 0, PanelWidth, float32(a.height), 2, colorPanelBorder, false)
	a.drawPerfBar(screen)

	a.panel.draw(screen)
	drawFPS(screen)
}

// drawPerfBar underlines the panel with the rolling average FPS
// against the configured target.
func (a *App) drawPerfBar(screen *ebiten.Image) {
	target := float64(a.cfg.FPSLimit)
	if target <= 0 {
		target = 60
	}
	frac := a.perf.averageFPS() / target
	if frac > 1 {
		frac = 1
	}
	col := colorSelected
	if !a.perf.good() {
		col = colorWarning
	}
	vector.DrawFilledRect(screen, 0, float32(a.height-4), float32(PanelWidth)*float32(frac), 4, col, false)
}

// Layout fixes the logical size; fullscreen and window resizes scale
// the composed frame instead of reflowing it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// render produces the raster for the current request, through the
// cache when the kind allows it, and uploads it for drawing.
func (a *App) render() {
	key := a.cacheKey()
	if a.cacheable() {
		if img, ok := a.cache.get(key); ok {
			a.raster = img
			a.upload()
			return
		}
	}

	img := canvas.NewImage(a.width-PanelWidth, a.height)
	start := time.Now()
	err := fractal.Render(context.Background(), img, a.kind, a.renderParams())
	took := time.Since(start)
	a.perf.addRender(took)

	switch {
	case err != nil:
		// The raster becomes the error surface; the session goes on.
		a.log.Printf("render %s depth %d: %v", a.kind, a.depth, err)
		burnError(img, err)
	case took >= slowRender:
		burnSlowWarning(img, took)
	}

	a.raster = img
	if err == nil && a.cacheable() {
		a.cache.put(key, img)
	}
	a.upload()
}

// upload copies the CPU raster into the GPU image Draw blits from.
func (a *App) upload() {
	w, h := a.raster.Size()
	if a.display == nil || a.display.Bounds().Dx() != w || a.display.Bounds().Dy() != h {
		a.display = ebiten.NewImage(w, h)
	}
	a.display.WritePixels(a.raster.RGBA().Pix)
}

// cacheable excludes the kinds whose output is not a pure function of
// the cache key: escape-time views re-frame with morph and landmarks,
// and wind moves with the clock.
func (a *App) cacheable() bool {
	if !a.cfg.EnableCaching || a.kind.Escape() {
		return false
	}
	return !(a.kind == fractal.Tree && a.windOn)
}

func (a *App) cacheKey() string {
	return fmt.Sprintf("%s_%d_%dx%d_%s_%s_%v",
		a.kind, a.depth, a.width-PanelWidth, a.height, a.pal, a.species, a.treeStyled)
}

// renderParams assembles the engine request from the UI state.
func (a *App) renderParams() fractal.Params {
	p := fractal.Params{
		Depth:   a.depth,
		Palette: a.pal,
		Workers: a.cfg.Workers,
	}
	switch a.kind {
	case fractal.Sierpinski:
		p.Style = sierpinski.Gradient
	case fractal.Mandelbrot:
		p.Zoom, p.OffsetX, p.OffsetY = escape.Landmarks[a.landmark].Offsets()
		p.Smooth = true
		p.Morph, p.MorphMode = a.morph, a.morphOn
	case fractal.Julia:
		p.Smooth = true
		p.Morph, p.MorphMode = a.morph, a.morphOn
	case fractal.Tree:
		p.Species = a.species
		switch {
		case a.windOn:
			p.Variant = tree.VariantWind
			p.Wind = tree.WindOptions{Strength: 0.6, Direction: 0, Time: a.windClock}
		case a.treeStyled:
			p.Variant = tree.VariantStyled
			p.Branch = palette.BranchGradient
		}
	}
	return p
}

func (a *App) depthLimit() int {
	return a.cfg.DepthLimit(a.kind)
}

// selectKind switches the active fractal, clamping the depth into the
// new kind's range and rebinding the slider.
func (a *App) selectKind(k fractal.Kind) {
	if k == a.kind {
		return
	}
	a.kind = k
	if a.depth > a.depthLimit() {
		a.depth = a.depthLimit()
	}
	a.panel.rebuild(a.kind, a.depth, a.depthLimit())
	a.dirty = true
}

// setDepth clamps and applies a depth request from the slider or the
// arrow keys.
func (a *App) setDepth(d int) {
	if d < 0 {
		d = 0
	}
	if max := a.depthLimit(); d > max {
		d = max
	}
	if d == a.depth {
		return
	}
	a.depth = d
	a.panel.setDepth(d)
	a.dirty = true
}

// snapshot saves the engine raster, overlays included, and logs where
// it went.
func (a *App) snapshot() {
	if a.raster == nil {
		return
	}
	path, err := a.snaps.SaveRaster(a.raster, a.kind, a.depth)
	if err != nil {
		a.log.Printf("snapshot: %v", err)
		return
	}
	a.log.Printf("snapshot saved to %s", path)
}

func (a *App) updateLabels() {
	a.panel.setLabel("fractal", kindTitles[a.kind])
	a.panel.setLabel("iterations", fmt.Sprintf("Iterations: %d / %d", a.depth, a.depthLimit()))
	a.panel.setLabel("scale", fmt.Sprintf("Scale: %.2fx", a.transform.Scale))
	a.panel.setLabel("rotation", fmt.Sprintf("Rotation: %.0f deg", a.transform.Angle))
	a.panel.setLabel("render", fmt.Sprintf("Render: %d ms (avg %d)",
		a.perf.lastRender().Milliseconds(), a.perf.averageRender().Milliseconds()))
	a.panel.setLabel("palette", "Palette: "+a.pal.String())
	a.panel.setLabel("species", "Species: "+a.species.String())

	wind := "Wind: off"
	if a.windOn {
		wind = "Wind: blowing"
	}
	a.panel.setLabel("wind", wind)

	morph := "Morph: off"
	if a.morphOn {
		morph = fmt.Sprintf("Morph: %.2f", a.morph)
	}
	a.panel.setLabel("morph", morph)
	a.panel.setLabel("landmark", "View: "+escape.Landmarks[a.landmark].Name)
}

// RenderOnce runs the whole pipeline without a window: render the
// configured default fractal at its configured depth, save the PNG and
// return its path.
func RenderOnce(cfg config.Config, log Logger) (string, error) {
	kind := startKind(cfg, log)
	w, h := cfg.WindowWidth-PanelWidth, cfg.WindowHeight
	if w <= 0 || h <= 0 {
		def := config.Defaults()
		w, h = def.WindowWidth-PanelWidth, def.WindowHeight
	}

	img := canvas.NewImage(w, h)
	p := fractal.Params{
		Depth:   cfg.DepthLimit(kind),
		Palette: startPalette(cfg, log),
		Smooth:  true,
		Workers: cfg.Workers,
	}
	if err := fractal.Render(context.Background(), img, kind, p); err != nil {
		return "", err
	}
	return NewSnapshots(cfg.ScreenshotDir).Save(img.RGBA())
}
