package canvas

import (
	"image/color"
	"testing"
)

func TestNewImageRejectsBadSize(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{0, 10}, {10, 0}, {-1, 5}, {5, -1}, {0, 0},
	} {
		if m := NewImage(tc.w, tc.h); m != nil {
			t.Fatalf("NewImage(%d, %d) = %v; want nil", tc.w, tc.h, m)
		}
	}
}

func TestSetPixelClips(t *testing.T) {
	m := NewImage(8, 8)
	red := color.RGBA{R: 0xFF, A: 0xFF}

	m.SetPixel(3, 4, red)
	if got := m.At(3, 4); got != red {
		t.Fatalf("At(3, 4) = %v; want %v", got, red)
	}

	// Out-of-range writes must be ignored, not panic.
	m.SetPixel(-1, 0, red)
	m.SetPixel(0, -1, red)
	m.SetPixel(8, 0, red)
	m.SetPixel(0, 8, red)
	if got := countLit(m); got != 1 {
		t.Fatalf("lit pixels after clipped writes = %d; want 1", got)
	}
}

func TestClearFills(t *testing.T) {
	m := NewImage(7, 5)
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}
	m.Clear(bg)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := m.At(x, y); got != bg {
				t.Fatalf("At(%d, %d) = %v; want %v", x, y, got, bg)
			}
		}
	}
}

func TestNilImageIsInert(t *testing.T) {
	var m *Image
	if w, h := m.Size(); w != 0 || h != 0 {
		t.Fatalf("nil Size() = %d, %d; want 0, 0", w, h)
	}
	m.SetPixel(0, 0, color.RGBA{A: 0xFF})
	m.Clear(color.RGBA{A: 0xFF})
	m.Line(Point{}, Point{X: 1}, color.RGBA{A: 0xFF}, 1)
	if m.RGBA() != nil {
		t.Fatalf("nil RGBA() != nil")
	}
}

// countLit counts pixels with nonzero alpha. Fresh images are fully
// transparent, so anything drawn with an opaque color is counted.
func countLit(m *Image) int {
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
