package viewer

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"fractoscope/fractal"
)

// Panel geometry. The click targets in kindRowAt and actionAt are
// derived from the same constants that drive the widget layout, so
// they stay aligned with what is drawn.
const (
	PanelWidth = 200

	panelPad     = 10
	panelSpacing = 10
	titleHeight  = 30
	kindRowWidth = 180
	kindRowStep  = 45 // row height plus spacing
	kindRowH     = kindRowStep - panelSpacing
	actionWidth  = 85
	actionHeight = 30

	kindRowsTop = panelPad + titleHeight + panelSpacing
)

var (
	kindCountRows = len(fractal.Kinds())
	actionsTop    = kindRowsTop + kindCountRows*kindRowStep
)

type panelAction int

const (
	actionNone panelAction = iota
	actionReset
	actionSave
)

var kindTitles = map[fractal.Kind]string{
	fractal.Koch:       "Koch Snowflake",
	fractal.Sierpinski: "Sierpinski Triangle",
	fractal.Carpet:     "Sierpinski Carpet",
	fractal.Mandelbrot: "Mandelbrot Set",
	fractal.Julia:      "Julia Set",
	fractal.Tree:       "Fractal Tree",
}

// panel is the left-hand control column: kind list, reset/save row,
// depth slider, live info block and the key legend. The widget tree
// is rebuilt on kind changes (selection highlight and slider range
// are fixed at construction); per-frame readouts only assign Label.
type panel struct {
	ui *ebitenui.UI

	titleFace text.Face
	bodyFace  text.Face
	smallFace text.Face

	onDepth func(int)

	slider *widget.Slider
	labels map[string]*widget.Text
}

func newPanel(onDepth func(int)) *panel {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &panel{
		titleFace: &text.GoTextFace{Source: src, Size: 18},
		bodyFace:  &text.GoTextFace{Source: src, Size: 14},
		smallFace: &text.GoTextFace{Source: src, Size: 12},
		onDepth:   onDepth,
		labels:    make(map[string]*widget.Text),
	}
}

// rebuild reconstructs the widget tree for the given selection. The
// depth slider is bound to [0, max] for the active kind.
func (p *panel) rebuild(kind fractal.Kind, depth, max int) {
	p.labels = make(map[string]*widget.Text)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(panelPad)),
			widget.RowLayoutOpts.Spacing(panelSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
			widget.WidgetOpts.MinSize(PanelWidth, 0),
		),
	)

	column.AddChild(p.label("Fractoscope", &p.titleFace, colorTitle, kindRowWidth, titleHeight))

	for _, k := range fractal.Kinds() {
		clr := colorText
		if k == kind {
			clr = colorSelected
		}
		column.AddChild(p.label(kindTitles[k], &p.bodyFace, clr, kindRowWidth, kindRowH))
	}

	actions := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(panelSpacing),
		)),
	)
	actions.AddChild(p.label("[ Reset ]", &p.bodyFace, colorText, actionWidth, actionHeight))
	actions.AddChild(p.label("[ Save ]", &p.bodyFace, colorText, actionWidth, actionHeight))
	column.AddChild(actions)

	p.slider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, max),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(kindRowWidth, 24),
		),
		widget.SliderOpts.Images(sliderTrack(), sliderHandle()),
		widget.SliderOpts.PageSizeFunc(func() int { return 1 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			p.onDepth(args.Current)
		}),
	)
	p.slider.Current = depth
	column.AddChild(p.slider)

	info := []string{"fractal", "iterations", "scale", "rotation", "render", "palette"}
	switch {
	case kind == fractal.Tree:
		info = append(info, "species", "wind")
	case kind.Escape():
		info = append(info, "morph", "landmark")
	}
	for _, key := range info {
		l := p.label("", &p.bodyFace, colorInfoText, kindRowWidth, 18)
		p.labels[key] = l
		column.AddChild(l)
	}

	column.AddChild(p.label("Controls:", &p.bodyFace, colorTitle, kindRowWidth, 20))
	for _, line := range []string{
		"1-6: fractal",
		"up/down: iterations",
		"+/-: scale  r/e: rotate",
		"wheel: zoom  drag: pan",
		"s: snapshot  0: reset",
		"p: palette  t: species",
		"a: wind  m: morph",
		",/.: blend  l: landmark",
		"f11: fullscreen  esc: quit",
	} {
		column.AddChild(p.label(line, &p.smallFace, colorControlText, kindRowWidth, 14))
	}

	root.AddChild(column)
	p.ui = &ebitenui.UI{Container: root}
}

func (p *panel) label(s string, face *text.Face, clr color.Color, w, h int) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
		),
	)
}

// setLabel updates a live readout; keys absent from the current build
// are ignored.
func (p *panel) setLabel(key, s string) {
	if l, ok := p.labels[key]; ok {
		l.Label = s
	}
}

// setDepth moves the slider without rebuilding, for keyboard steps.
func (p *panel) setDepth(depth int) {
	if p.slider != nil {
		p.slider.Current = depth
	}
}

func (p *panel) update() {
	if p.ui != nil {
		p.ui.Update()
	}
}

func (p *panel) draw(screen *ebiten.Image) {
	if p.ui != nil {
		p.ui.Draw(screen)
	}
}

// kindRowAt maps a click inside the panel to the kind row under it.
func kindRowAt(x, y int) (fractal.Kind, bool) {
	if x < panelPad || x >= panelPad+kindRowWidth {
		return 0, false
	}
	for i := 0; i < kindCountRows; i++ {
		top := kindRowsTop + i*kindRowStep
		if y >= top && y < top+kindRowH {
			return fractal.Kind(i), true
		}
	}
	return 0, false
}

// actionAt maps a click inside the panel to the reset/save row.
func actionAt(x, y int) panelAction {
	if y < actionsTop || y >= actionsTop+actionHeight {
		return actionNone
	}
	if x >= panelPad && x < panelPad+actionWidth {
		return actionReset
	}
	if x >= panelPad+actionWidth+panelSpacing && x < panelPad+2*actionWidth+panelSpacing {
		return actionSave
	}
	return actionNone
}

func sliderTrack() *widget.SliderTrackImage {
	idle := ebiten.NewImage(32, 8)
	idle.Fill(colorSliderTrack)
	hover := ebiten.NewImage(32, 8)
	hover.Fill(colorPanelBorder)
	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceSimple(idle, 4, 4),
		Hover: image.NewNineSliceSimple(hover, 4, 4),
	}
}

func sliderHandle() *widget.ButtonImage {
	idle := ebiten.NewImage(16, 16)
	idle.Fill(colorSliderGrab)
	hover := ebiten.NewImage(16, 16)
	hover.Fill(colorSelected)
	pressed := ebiten.NewImage(16, 16)
	pressed.Fill(colorTitle)
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceSimple(idle, 4, 4),
		Hover:   image.NewNineSliceSimple(hover, 4, 4),
		Pressed: image.NewNineSliceSimple(pressed, 4, 4),
	}
}
