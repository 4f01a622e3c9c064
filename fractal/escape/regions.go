package escape

// Landmark is a named view worth visiting in the Mandelbrot set.
type Landmark struct {
	Name    string
	CenterX float64
	CenterY float64
	Zoom    float64
}

// Landmarks lists classic regions to cycle through, from the whole set
// down to deep spirals.
var Landmarks = []Landmark{
	{Name: "Full view", CenterX: 0, CenterY: 0, Zoom: 1},
	{Name: "Main bay", CenterX: -0.75, CenterY: 0, Zoom: 4},
	{Name: "Seahorse valley", CenterX: -0.745, CenterY: 0.1, Zoom: 50},
	{Name: "Misiurewicz spiral", CenterX: -0.77568377, CenterY: 0.13646737, Zoom: 200},
	{Name: "Mini Mandelbrot", CenterX: -0.16, CenterY: 1.0407, Zoom: 100},
	{Name: "Antenna", CenterX: -1.25, CenterY: 0, Zoom: 10},
}

// Offsets converts the landmark center into the zoom and pan offsets
// RegionFor expects. The x window sits at -0.5/zoom plus the offset,
// so the offset leads the center by half a zoomed unit.
func (l Landmark) Offsets() (zoom, offsetX, offsetY float64) {
	return l.Zoom, l.CenterX + 0.5/l.Zoom, l.CenterY
}
