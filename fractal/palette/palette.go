// Package palette maps escape-time measurements and branch depths to
// colors. Everything here is a pure function of its inputs.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Mode selects an escape-time color ramp.
type Mode uint8

const (
	Default Mode = iota
	Fire
	Ocean
	Psychedelic
	modeCount
)

var modeNames = [modeCount]string{"default", "fire", "ocean", "psychedelic"}

// ErrUnknownMode rejects palette names outside the mode enums.
var ErrUnknownMode = errors.New("palette: unknown mode")

func (m Mode) String() string {
	if m >= modeCount {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode resolves a case-insensitive mode name.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range modeNames {
		if s == n {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Next cycles to the following mode, wrapping at the end.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// Escape colors one escape-time sample. Points that never escape are
// always black, whatever the mode.
func Escape(iter, maxIter int, m Mode) color.RGBA {
	if maxIter <= 0 || iter >= maxIter {
		return color.RGBA{A: 0xFF}
	}
	if iter < 0 {
		iter = 0
	}
	return ramp(float64(iter)/float64(maxIter), m)
}

// EscapeSmooth colors a continuous escape value. Values at or past
// maxIter are in-set and always black.
func EscapeSmooth(v float64, maxIter int, m Mode) color.RGBA {
	if maxIter <= 0 || v >= float64(maxIter) {
		return color.RGBA{A: 0xFF}
	}
	return ramp(clamp01(v/float64(maxIter)), m)
}

func ramp(t float64, m Mode) color.RGBA {
	t = clamp01(t)
	switch m {
	case Fire:
		// Black to red to yellow, then bleed toward white.
		if t < 0.5 {
			u := 2 * t
			return color.RGBA{R: channel(255 * u), G: channel(255 * u * u), A: 0xFF}
		}
		return color.RGBA{R: 0xFF, G: 0xFF, B: channel(255 * (2*t - 1)), A: 0xFF}
	case Ocean:
		return color.RGBA{
			R: channel(100 * t),
			G: channel(200 * t),
			B: channel(255 * (0.5 + 0.5*t)),
			A: 0xFF,
		}
	case Psychedelic:
		return color.RGBA{
			R: channel(128 + 127*math.Sin(4*math.Pi*t)),
			G: channel(128 + 127*math.Sin(4*math.Pi*t+2)),
			B: channel(128 + 127*math.Sin(4*math.Pi*t+4)),
			A: 0xFF,
		}
	default:
		v := 255 * t
		return color.RGBA{R: channel(v), G: channel(v / 2), B: channel(255 - v), A: 0xFF}
	}
}

// BranchMode selects a tree branch color scheme.
type BranchMode uint8

const (
	BranchDefault BranchMode = iota
	BranchGradient
	BranchSpring
	BranchAutumn
	BranchWinter
	BranchNeon
	BranchFire
	branchModeCount
)

var branchModeNames = [branchModeCount]string{
	"default", "gradient", "spring", "autumn", "winter", "neon", "fire",
}

func (m BranchMode) String() string {
	if m >= branchModeCount {
		return fmt.Sprintf("branchmode(%d)", uint8(m))
	}
	return branchModeNames[m]
}

// ParseBranchMode resolves a case-insensitive branch scheme name.
func ParseBranchMode(name string) (BranchMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range branchModeNames {
		if s == n {
			return BranchMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

var (
	trunkBrown = color.RGBA{R: 101, G: 67, B: 33, A: 0xFF}
	barkBrown  = color.RGBA{R: 139, G: 69, B: 19, A: 0xFF}

	springGreens = []color.RGBA{
		{R: 124, G: 252, B: 0, A: 0xFF},
		{R: 50, G: 205, B: 50, A: 0xFF},
		{R: 0, G: 255, B: 127, A: 0xFF},
	}
	autumnLeaves = []color.RGBA{
		{R: 255, G: 140, B: 0, A: 0xFF},
		{R: 255, G: 69, B: 0, A: 0xFF},
		{R: 255, G: 215, B: 0, A: 0xFF},
		{R: 220, G: 20, B: 60, A: 0xFF},
		{R: 255, G: 165, B: 0, A: 0xFF},
		{R: 178, G: 34, B: 34, A: 0xFF},
	}
	neonCycle = []color.RGBA{
		{R: 0, G: 255, B: 255, A: 0xFF},
		{R: 255, G: 0, B: 255, A: 0xFF},
		{R: 255, G: 255, B: 0, A: 0xFF},
		{R: 0, G: 255, B: 0, A: 0xFF},
		{R: 255, G: 0, B: 127, A: 0xFF},
		{R: 127, G: 255, B: 0, A: 0xFF},
	}
	fireRamp = []color.RGBA{
		{R: 255, G: 0, B: 0, A: 0xFF},
		{R: 255, G: 69, B: 0, A: 0xFF},
		{R: 255, G: 140, B: 0, A: 0xFF},
		{R: 255, G: 215, B: 0, A: 0xFF},
		{R: 255, G: 255, B: 0, A: 0xFF},
	}
)

// Branch colors one tree segment. Depth counts down toward the tips:
// trunks sit at high depth, leaves near zero. The gradient mode also
// weighs the branch length, keeping long boughs woody.
func Branch(depth int, length float64, m BranchMode) color.RGBA {
	if depth < 0 {
		depth = 0
	}
	if length < 0 {
		length = 0
	}
	switch m {
	case BranchGradient:
		df := float64(depth) / 12
		lf := length / 100
		switch {
		case df > 0.6 || lf > 0.5:
			i := math.Min(1, df+lf*0.3)
			return color.RGBA{R: channel(139 * i), G: channel(69 * i), B: channel(19 * i), A: 0xFF}
		case df > 0.3:
			return trunkBrown
		default:
			i := 0.7 + 0.3*(1-df)
			return color.RGBA{R: channel(34 * i), G: channel(139 * i), B: channel(34 * i), A: 0xFF}
		}
	case BranchSpring:
		if depth > 4 {
			return trunkBrown
		}
		return springGreens[depth%len(springGreens)]
	case BranchAutumn:
		if depth > 4 {
			return barkBrown
		}
		return autumnLeaves[(depth+int(length))%len(autumnLeaves)]
	case BranchWinter:
		if depth > 3 {
			return trunkBrown
		}
		g := channel(float64(100 + depth*20))
		return color.RGBA{R: g, G: g, B: g, A: 0xFF}
	case BranchNeon:
		return neonCycle[depth%len(neonCycle)]
	case BranchFire:
		i := depth
		if i >= len(fireRamp) {
			i = len(fireRamp) - 1
		}
		return fireRamp[i]
	default:
		return color.RGBA{G: 255, A: 0xFF}
	}
}

// Lerp interpolates between two colors, t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return channel(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xFF}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
