// Package tree renders recursive branching trees: fixed species
// recipes, a seeded stochastic variant, wind sway and seasonal styles.
package tree

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"tinygo.org/x/tinyfont/proggy"

	"fractoscope/canvas"
	"fractoscope/fractal/palette"
)

// Emit receives each branch segment in drawing order.
type Emit func(canvas.Segment)

// Variant selects which drawing strategy Draw uses.
type Variant uint8

const (
	// VariantAuto keys species and palette off the depth, the way the
	// plain viewer presents trees.
	VariantAuto Variant = iota
	VariantStyled
	VariantStochastic
	VariantWind
	VariantSeasonal
)

// DefaultSeed reproduces the stock stochastic tree.
const DefaultSeed = 42

// WindOptions bend a tree in a directional breeze.
type WindOptions struct {
	Strength  float64 // 0..1
	Direction float64 // degrees the wind blows toward
	Time      float64 // animation clock; equal values reproduce a frame
}

// Options configure the Draw entry.
type Options struct {
	Depth      int
	Variant    Variant
	Species    Species
	Season     Season
	Mode       palette.BranchMode
	Randomness float64 // stochastic spread, 0..1
	Seed       int64
	Wind       WindOptions
}

// Branch draws one branch and recurses into its children. The heading
// is in degrees with 90 pointing up the raster. Recursion stops at
// depth zero or when length falls below both the species floor and the
// caller's minimum.
func Branch(emit Emit, x, y, angle float64, depth int, length float64, sp Params, mode palette.BranchMode, minBranch float64) {
	if depth <= 0 || length < math.Max(sp.MinLength, minBranch) {
		return
	}

	rad := angle * math.Pi / 180
	nx := x + length*math.Cos(rad)
	ny := y - length*math.Sin(rad)

	emit(canvas.Segment{
		A:     canvas.Point{X: x, Y: y},
		B:     canvas.Point{X: nx, Y: ny},
		Color: palette.Branch(depth, length, mode),
		Width: thickness(depth, length, sp.ThicknessFactor),
	})

	childLen := length * sp.LengthFactor

	if sp.Branches <= 2 {
		// Willow-like species sag toward the ground near the crown.
		droop := 0.0
		if sp.DroopFactor > 1 && depth < 4 {
			droop = float64(4-depth) * 5 * (sp.DroopFactor - 1)
		}
		Branch(emit, nx, ny, angle+sp.AngleLeft-droop, depth-1, childLen, sp, mode, minBranch)
		Branch(emit, nx, ny, angle-sp.AngleRight-droop, depth-1, childLen, sp, mode, minBranch)
		return
	}

	// Spread the children across a window that widens with the branch
	// count; outer children keep slightly more length.
	spread := 50 + float64(sp.Branches-2)*10
	for i := 0; i < sp.Branches; i++ {
		off := float64(i)/float64(sp.Branches-1) - 0.5
		jitter := 0.9 + 0.2*math.Abs(off)
		Branch(emit, nx, ny, angle+spread*off, depth-1, childLen*jitter, sp, mode, minBranch)
	}
}

// Stochastic draws a randomized tree. The generator is reseeded per
// level from the base seed, so equal seeds reproduce the same tree.
func Stochastic(emit Emit, x, y, angle float64, depth int, length, randomness float64, seed int64) {
	if depth <= 0 || length < 2 {
		return
	}

	rng := rand.New(rand.NewSource(seed + int64(depth)*100))

	a := angle + (rng.Float64()*2-1)*randomness*20
	actual := length * (1 - 0.4*randomness + rng.Float64()*0.7*randomness)

	rad := a * math.Pi / 180
	nx := x + actual*math.Cos(rad)
	ny := y - actual*math.Sin(rad)

	emit(canvas.Segment{
		A:     canvas.Point{X: x, Y: y},
		B:     canvas.Point{X: nx, Y: ny},
		Color: shadePool(rng, depth),
		Width: jitterWidth(rng, depth),
	})

	childLen := actual * (0.6 + rng.Float64()*0.2)

	// Deeper levels almost always fork; trunk levels may skip a side.
	p := math.Min(0.9, 0.5+float64(depth)*0.1)
	budget := 2
	if depth > 6 {
		budget = 3
	}
	made := 0
	if rng.Float64() < p {
		Stochastic(emit, nx, ny, a+15+rng.Float64()*25, depth-1, childLen, randomness, seed)
		made++
	}
	if rng.Float64() < p {
		Stochastic(emit, nx, ny, a-15-rng.Float64()*25, depth-1, childLen, randomness, seed)
		made++
	}
	// An occasional center shoot fills in when a side was skipped.
	if depth > 2 && made < budget && rng.Float64() < 0.3 {
		Stochastic(emit, nx, ny, a+rng.Float64()*20-10, depth-1, childLen*0.9, randomness, seed)
	}
}

var (
	barkShades = []color.RGBA{
		{R: 139, G: 69, B: 19, A: 0xFF},
		{R: 101, G: 67, B: 33, A: 0xFF},
		{R: 160, G: 82, B: 45, A: 0xFF},
		{R: 120, G: 60, B: 30, A: 0xFF},
		{R: 150, G: 75, B: 40, A: 0xFF},
	}
	leafShades = []color.RGBA{
		{R: 34, G: 139, B: 34, A: 0xFF},
		{R: 0, G: 128, B: 0, A: 0xFF},
		{R: 50, G: 205, B: 50, A: 0xFF},
		{R: 0, G: 100, B: 0, A: 0xFF},
		{R: 60, G: 179, B: 113, A: 0xFF},
		{R: 46, G: 139, B: 87, A: 0xFF},
	}
)

func shadePool(rng *rand.Rand, depth int) color.RGBA {
	if depth > 4 {
		return barkShades[rng.Intn(len(barkShades))]
	}
	return leafShades[rng.Intn(len(leafShades))]
}

func jitterWidth(rng *rand.Rand, depth int) int {
	base := int(float64(depth) * 0.9)
	if base < 1 {
		base = 1
	}
	w := base + rng.Intn(3) - 1
	if w < 1 {
		return 1
	}
	if w > 8 {
		return 8
	}
	return w
}

// Wind draws a tree bent by a breeze. Thin outer branches feel the wind
// more than the trunk, and the sway oscillates with the clock.
func Wind(emit Emit, x, y, angle float64, depth int, length float64, w WindOptions) {
	if depth <= 0 || length < 2 {
		return
	}

	sens := math.Max(0.1, 1-float64(depth)/12)
	osc := math.Sin(w.Time*0.01+float64(depth)*0.5)*0.5 + 0.5
	effect := w.Strength * sens * 25 * osc
	bent := angle + effect*math.Cos((w.Direction-angle)*math.Pi/180)

	rad := bent * math.Pi / 180
	nx := x + length*math.Cos(rad)
	ny := y - length*math.Sin(rad)

	width := int(float64(depth) * 0.8)
	if width < 1 {
		width = 1
	}
	emit(canvas.Segment{
		A:     canvas.Point{X: x, Y: y},
		B:     canvas.Point{X: nx, Y: ny},
		Color: windShade(depth, w.Strength*sens),
		Width: width,
	})

	// Gusts also widen the fork between siblings.
	spread := 25 + w.Strength*15
	childLen := length * 0.72
	Wind(emit, nx, ny, bent+spread, depth-1, childLen, w)
	Wind(emit, nx, ny, bent-spread, depth-1, childLen, w)
}

// windShade brightens the leaves as gusts flip them over.
func windShade(depth int, gust float64) color.RGBA {
	if depth > 4 {
		return color.RGBA{R: 139, G: 69, B: 19, A: 0xFF}
	}
	lift := int(gust * 40)
	return color.RGBA{R: clamp8(34 + lift), G: clamp8(139 + lift), B: 34, A: 0xFF}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// SeasonStyle maps a season onto the species and palette it renders
// with.
func SeasonStyle(s Season) (Species, palette.BranchMode) {
	switch s {
	case Summer:
		return Bushy, palette.BranchGradient
	case Autumn:
		return Classic, palette.BranchAutumn
	case Winter:
		return Classic, palette.BranchWinter
	default:
		return Classic, palette.BranchSpring
	}
}

// Seasonal draws a tree styled for a season. Winter thins and shortens
// every branch to suggest a bare crown.
func Seasonal(emit Emit, x, y float64, depth int, length float64, season Season) {
	sp, mode := SeasonStyle(season)
	p := sp.Preset()
	if season == Winter {
		p.ThicknessFactor = 0.6
		p.LengthFactor = 0.8
	}
	Branch(emit, x, y, 90, depth, length, p, mode, 1)
}

// Draw renders a tree rooted near the bottom center of the raster.
// Depths past ten burn a branch-count note into the raster.
func Draw(c canvas.Canvas, opt Options) {
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	baseX := fw * 0.5
	baseY := fh * 0.9
	length := math.Max(20, 0.15*math.Min(fw, fh))
	minBranch := math.Max(1, math.Min(fw, fh)/400)
	seed := opt.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	segments := 0
	emit := func(s canvas.Segment) {
		segments++
		c.Line(s.A, s.B, s.Color, s.Width)
	}

	switch opt.Variant {
	case VariantStyled:
		Branch(emit, baseX, baseY, 90, opt.Depth, length, opt.Species.Preset(), opt.Mode, minBranch)
	case VariantStochastic:
		Stochastic(emit, baseX, baseY, 90, capDepth(opt.Depth), length, opt.Randomness, seed)
	case VariantWind:
		Wind(emit, baseX, baseY, 90, opt.Depth, length, opt.Wind)
	case VariantSeasonal:
		Seasonal(emit, baseX, baseY, opt.Depth, length, opt.Season)
	default:
		drawAuto(emit, baseX, baseY, opt.Depth, length, minBranch, seed)
	}

	if opt.Depth > 10 {
		note := fmt.Sprintf("%d branches", segments)
		canvas.WriteLine(c, &proggy.TinySZ8pt7b, 8, 8, note, color.RGBA{R: 255, G: 180, B: 0, A: 0xFF})
	}
}

// drawAuto is the depth-keyed presentation: plain at a glance, richer
// styles as the tree deepens, stochastic at the extreme.
func drawAuto(emit Emit, x, y float64, depth int, length, minBranch float64, seed int64) {
	switch {
	case depth <= 2:
		Branch(emit, x, y, 90, depth, length, Classic.Preset(), palette.BranchDefault, minBranch)
	case depth <= 5:
		Branch(emit, x, y, 90, depth, length, Classic.Preset(), palette.BranchGradient, minBranch)
	case depth <= 8:
		Branch(emit, x, y, 90, depth, length, Bushy.Preset(), palette.BranchSpring, minBranch)
	case depth <= 12:
		Branch(emit, x, y, 90, depth, length, Oak.Preset(), palette.BranchAutumn, minBranch)
	default:
		Stochastic(emit, x, y, 90, capDepth(depth), length, 0.25, seed)
	}
}

func capDepth(d int) int {
	if d > 15 {
		return 15
	}
	return d
}

func thickness(depth int, length, factor float64) int {
	w := float64(depth)*factor + length/20
	if w < 1 {
		return 1
	}
	return int(w)
}
