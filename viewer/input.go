package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fractoscope/fractal"
	"fractoscope/fractal/escape"
)

// kindKeys maps the number row to fractal kinds, in panel order.
var kindKeys = [...]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
}

// handleKeys applies the keyboard bindings listed in the panel legend.
// Everything edge-triggers; holding a key does not repeat.
func (a *App) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for i, key := range kindKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.selectKind(fractal.Kind(i))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.setDepth(a.depth + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.setDepth(a.depth - 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		a.transform.ScaleBy(1.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		a.transform.ScaleBy(0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.transform.Rotate(5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.transform.Rotate(-5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) || inpututil.IsKeyJustPressed(ebiten.KeyKP0) {
		a.transform.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.snapshot()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.pal = a.pal.Next()
		if a.kind.Escape() {
			a.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.species = a.species.Next()
		a.treeStyled = true
		if a.kind == fractal.Tree {
			a.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.windOn = !a.windOn
		if a.kind == fractal.Tree {
			a.dirty = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.morphOn = !a.morphOn
		if a.kind.Escape() {
			a.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		a.nudgeMorph(-0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		a.nudgeMorph(0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		a.nextLandmark()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

func (a *App) nudgeMorph(step float64) {
	m := a.morph + step
	if m < 0 {
		m = 0
	}
	if m > 1 {
		m = 1
	}
	if m == a.morph {
		return
	}
	a.morph = m
	if a.kind.Escape() && a.morphOn {
		a.dirty = true
	}
}

func (a *App) nextLandmark() {
	a.landmark = (a.landmark + 1) % len(escape.Landmarks)
	// Morph renders use a fixed frame; the landmark applies once it is
	// switched off again.
	if a.kind == fractal.Mandelbrot && !a.morphOn {
		a.dirty = true
	}
}

// handleMouse routes clicks: panel clicks hit widgets, fractal-area
// presses start a pan drag, right clicks snapshot, the wheel zooms.
func (a *App) handleMouse() {
	x, y := ebiten.CursorPosition()
	inPanel := x < PanelWidth

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if inPanel {
			if k, ok := kindRowAt(x, y); ok {
				a.selectKind(k)
			}
			switch actionAt(x, y) {
			case actionReset:
				a.transform.Reset()
			case actionSave:
				a.snapshot()
			}
		} else {
			a.dragging = true
			a.dragX, a.dragY = x, y
		}
	}
	if a.dragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			a.transform.Translate(float64(x-a.dragX), float64(y-a.dragY))
			a.dragX, a.dragY = x, y
		} else {
			a.dragging = false
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !inPanel {
		a.snapshot()
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !inPanel {
		if wy > 0 {
			a.transform.ScaleBy(1.1)
		} else {
			a.transform.ScaleBy(0.9)
		}
	}
}
