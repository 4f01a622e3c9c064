package viewer

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"tinygo.org/x/tinyfont/proggy"

	"fractoscope/canvas"
)

// burnError replaces the raster with the error surface: a solid red
// field with the failure burned in, so snapshots of a broken state
// still say what went wrong.
func burnError(m *canvas.Image, err error) {
	m.Clear(colorError)
	canvas.WriteLine(m, &proggy.TinySZ8pt7b, 10, 10, "render failed", colorTitle)
	canvas.WriteLine(m, &proggy.TinySZ8pt7b, 10, 28, fitLine(m, err.Error()), colorText)
}

// fitLine trims a message until it fits the raster width. Wrapped
// errors can run long and tinyfont does not clip.
func fitLine(m *canvas.Image, s string) string {
	w, _ := m.Size()
	for len(s) > 1 && canvas.LineWidth(&proggy.TinySZ8pt7b, s) > w-20 {
		s = s[:len(s)-1]
	}
	return s
}

// burnSlowWarning marks a raster whose render blew the latency budget.
func burnSlowWarning(m *canvas.Image, d time.Duration) {
	msg := fmt.Sprintf("slow render: %.1fs", d.Seconds())
	canvas.WriteLine(m, &proggy.TinySZ8pt7b, 10, 10, msg, colorWarning)
}

// drawFPS prints the live frame rate in the top-right corner.
func drawFPS(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), w-100, 10)
}
