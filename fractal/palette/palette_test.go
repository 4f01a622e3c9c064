package palette

import (
	"image/color"
	"testing"
)

var black = color.RGBA{A: 0xFF}

func TestEscapeInSetIsAlwaysBlack(t *testing.T) {
	for m := Mode(0); m < modeCount; m++ {
		for _, iter := range []int{100, 150, 1000} {
			if got := Escape(iter, 100, m); got != black {
				t.Fatalf("Escape(%d, 100, %s) = %v; want black", iter, m, got)
			}
		}
	}
}

func TestEscapeDefaultRamp(t *testing.T) {
	tests := []struct {
		iter, max int
		want      color.RGBA
	}{
		{0, 255, color.RGBA{R: 0, G: 0, B: 255, A: 0xFF}},
		{128, 256, color.RGBA{R: 127, G: 63, B: 127, A: 0xFF}},
	}
	for _, tc := range tests {
		if got := Escape(tc.iter, tc.max, Default); got != tc.want {
			t.Fatalf("Escape(%d, %d, default) = %v; want %v", tc.iter, tc.max, got, tc.want)
		}
	}
}

func TestEscapeModesDiffer(t *testing.T) {
	seen := map[color.RGBA]Mode{}
	for m := Mode(0); m < modeCount; m++ {
		c := Escape(30, 100, m)
		if prev, dup := seen[c]; dup {
			t.Fatalf("modes %s and %s collide at iter 30/100: %v", prev, m, c)
		}
		seen[c] = m
	}
}

func TestEscapeSmoothMatchesInSetRule(t *testing.T) {
	if got := EscapeSmooth(100, 100, Fire); got != black {
		t.Fatalf("EscapeSmooth(100, 100) = %v; want black", got)
	}
	if got := EscapeSmooth(99.99, 100, Fire); got == black {
		t.Fatalf("EscapeSmooth(99.99, 100) is black; want colored")
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for m := Mode(0); m < modeCount; m++ {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMode(%q) = %v; want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("plasma"); err == nil {
		t.Fatalf("ParseMode(\"plasma\") succeeded; want error")
	}
}

func TestModeNextWraps(t *testing.T) {
	m := Default
	for i := 0; i < int(modeCount); i++ {
		m = m.Next()
	}
	if m != Default {
		t.Fatalf("Next cycle ends at %v; want %v", m, Default)
	}
}

func TestBranchGradient(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		length float64
		want   color.RGBA
	}{
		{"trunk", 12, 90, color.RGBA{R: 139, G: 69, B: 19, A: 0xFF}},
		{"long bough stays woody", 2, 60, color.RGBA{R: 48, G: 23, B: 6, A: 0xFF}},
		{"mid branch", 5, 20, trunkBrown},
		{"tip", 1, 5, color.RGBA{R: 33, G: 135, B: 33, A: 0xFF}},
	}
	for _, tc := range tests {
		if got := Branch(tc.depth, tc.length, BranchGradient); got != tc.want {
			t.Fatalf("%s: Branch(%d, %v) = %v; want %v", tc.name, tc.depth, tc.length, got, tc.want)
		}
	}
}

func TestBranchSchemeTables(t *testing.T) {
	tests := []struct {
		mode   BranchMode
		depth  int
		length float64
		want   color.RGBA
	}{
		{BranchSpring, 6, 10, trunkBrown},
		{BranchSpring, 2, 10, color.RGBA{R: 0, G: 255, B: 127, A: 0xFF}},
		{BranchAutumn, 6, 10, barkBrown},
		{BranchAutumn, 2, 10, color.RGBA{R: 255, G: 140, B: 0, A: 0xFF}},
		{BranchWinter, 4, 10, trunkBrown},
		{BranchWinter, 2, 10, color.RGBA{R: 140, G: 140, B: 140, A: 0xFF}},
		{BranchNeon, 7, 10, color.RGBA{R: 255, G: 0, B: 255, A: 0xFF}},
		{BranchFire, 9, 10, color.RGBA{R: 255, G: 255, B: 0, A: 0xFF}},
		{BranchFire, 2, 10, color.RGBA{R: 255, G: 140, B: 0, A: 0xFF}},
		{BranchDefault, 3, 10, color.RGBA{G: 255, A: 0xFF}},
	}
	for _, tc := range tests {
		if got := Branch(tc.depth, tc.length, tc.mode); got != tc.want {
			t.Fatalf("Branch(%d, %v, %s) = %v; want %v", tc.depth, tc.length, tc.mode, got, tc.want)
		}
	}
}

func TestParseBranchModeRoundTrip(t *testing.T) {
	for m := BranchMode(0); m < branchModeCount; m++ {
		got, err := ParseBranchMode(m.String())
		if err != nil {
			t.Fatalf("ParseBranchMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseBranchMode(%q) = %v; want %v", m.String(), got, m)
		}
	}
	if _, err := ParseBranchMode("plasma"); err == nil {
		t.Fatalf("ParseBranchMode(\"plasma\") succeeded; want error")
	}
}

func TestLerpMixesChannels(t *testing.T) {
	a := color.RGBA{A: 0xFF}
	b := color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	if got := Lerp(a, b, 0.5); got != (color.RGBA{R: 127, G: 127, B: 127, A: 0xFF}) {
		t.Fatalf("Lerp midpoint = %v", got)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Fatalf("Lerp past 1 = %v; want clamped to %v", got, b)
	}
}
