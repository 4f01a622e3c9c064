package canvas

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont/proggy"
)

func TestWriteLineLitsPixels(t *testing.T) {
	m := NewImage(64, 16)
	WriteLine(m, &proggy.TinySZ8pt7b, 2, 2, "ok", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if got := countLit(m); got == 0 {
		t.Fatalf("WriteLine lit no pixels")
	}
}

func TestWriteLineNilFontIsInert(t *testing.T) {
	m := NewImage(16, 16)
	WriteLine(m, nil, 2, 2, "x", color.RGBA{A: 0xFF})
	if got := countLit(m); got != 0 {
		t.Fatalf("nil font lit %d pixels; want 0", got)
	}
}

func TestLineWidthPositive(t *testing.T) {
	if w := LineWidth(&proggy.TinySZ8pt7b, "0"); w <= 0 {
		t.Fatalf("LineWidth = %d; want > 0", w)
	}
}
