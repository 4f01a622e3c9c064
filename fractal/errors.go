package fractal

import "errors"

// Sentinel errors returned by Render before any pixel is touched.
var (
	ErrUnknownKind = errors.New("fractal: unknown kind")
	ErrDepthRange  = errors.New("fractal: depth out of range")
	ErrNilCanvas   = errors.New("fractal: nil canvas")
	ErrEmptyRaster = errors.New("fractal: empty raster")
)
