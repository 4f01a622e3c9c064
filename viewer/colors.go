package viewer

import "image/color"

// Dark chrome shared by the panel, HUD and error surfaces.
var (
	colorBackground  = color.RGBA{R: 25, G: 25, B: 35, A: 255}
	colorPanelBG     = color.RGBA{R: 35, G: 35, B: 45, A: 255}
	colorPanelBorder = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	colorText        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorTitle       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorInfoText    = color.RGBA{R: 180, G: 180, B: 190, A: 255}
	colorControlText = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	colorSelected    = color.RGBA{R: 0, G: 150, B: 255, A: 255}
	colorError       = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colorWarning     = color.RGBA{R: 255, G: 180, B: 0, A: 255}
	colorSliderTrack = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	colorSliderGrab  = color.RGBA{R: 0, G: 150, B: 255, A: 255}
)
