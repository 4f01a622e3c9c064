// Package config loads and persists the viewer settings as JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fractoscope/fractal"
)

// DefaultPath is where the viewer looks for settings when no path is
// given on the command line.
const DefaultPath = "config.json"

// Config holds the persisted viewer settings.
type Config struct {
	WindowWidth   int            `json:"window_width"`
	WindowHeight  int            `json:"window_height"`
	FPSLimit      int            `json:"fps_limit"`
	DefaultKind   string         `json:"default_fractal"`
	MaxIterations map[string]int `json:"max_iterations"`
	Palette       string         `json:"palette"`
	ScreenshotDir string         `json:"screenshot_dir"`
	Workers       int            `json:"workers"`
	EnableCaching bool           `json:"enable_caching"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		WindowWidth:  1200,
		WindowHeight: 800,
		FPSLimit:     60,
		DefaultKind:  "koch",
		MaxIterations: map[string]int{
			"koch":       7,
			"sierpinski": 8,
			"carpet":     6,
			"mandelbrot": 100,
			"julia":      100,
			"tree":       12,
		},
		Palette:       "auto",
		ScreenshotDir: "snapshots",
		Workers:       0,
		EnableCaching: true,
	}
}

// Load reads the file and merges it over the defaults, so a partial
// file only overrides the keys it names. A missing file is not an
// error: the defaults come back as-is. A malformed file is.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration with stable indentation.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// DepthLimit returns the depth cap the viewer enforces for a kind. A
// configured value only tightens the engine ceiling; anything missing
// or out of range falls back to it.
func (c Config) DepthLimit(k fractal.Kind) int {
	max := k.MaxDepth()
	if v, ok := c.MaxIterations[k.String()]; ok && v >= 0 && v < max {
		return v
	}
	return max
}
