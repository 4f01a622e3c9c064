package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"fractoscope/config"
	"fractoscope/internal/buildinfo"
	"fractoscope/viewer"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath, "Path to the JSON configuration file.")
		headless   = flag.Bool("headless", false, "Render the configured fractal to a PNG and exit.")
		tps        = flag.Int("tps", 0, "Override the configured ticks per second (0 = use config).")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("config %s: %v; using defaults", *configPath, err)
	}

	if *headless {
		path, err := viewer.RenderOnce(cfg, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Printf("rendered %s", path)
		return
	}

	app := viewer.New(cfg, logger)
	ebiten.SetWindowTitle("Fractoscope (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(app.Size())
	if *tps > 0 {
		ebiten.SetTPS(*tps)
	} else if cfg.FPSLimit > 0 {
		ebiten.SetTPS(cfg.FPSLimit)
	}
	if err := ebiten.RunGame(app); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
