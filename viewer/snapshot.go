package viewer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"fractoscope/canvas"
	"fractoscope/fractal"
)

const snapshotStamp = "20060102_150405"

// Snapshots writes PNG captures into a directory, creating it on
// first use.
type Snapshots struct {
	Dir string

	now func() time.Time
}

func NewSnapshots(dir string) *Snapshots {
	return &Snapshots{Dir: dir, now: time.Now}
}

// Save writes img as fractal_<timestamp>.png and returns the path.
func (s *Snapshots) Save(img image.Image) (string, error) {
	name := fmt.Sprintf("fractal_%s.png", s.now().Format(snapshotStamp))
	return s.write(name, img)
}

// SaveRaster writes the raw engine raster under a name that records
// what was rendered, e.g. mandelbrot_100iter_20240101_120000.png.
func (s *Snapshots) SaveRaster(m *canvas.Image, kind fractal.Kind, depth int) (string, error) {
	name := fmt.Sprintf("%s_%diter_%s.png", kind, depth, s.now().Format(snapshotStamp))
	return s.write(name, m.RGBA())
}

func (s *Snapshots) write(name string, img image.Image) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot dir %q: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode snapshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot %q: %w", path, err)
	}
	return path, nil
}
