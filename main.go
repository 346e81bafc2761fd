package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splatter/config"
	"github.com/milk9111/splatter/drawing"
	"github.com/milk9111/splatter/splatter"
)

func main() {
	configPath := flag.String("config", "", "viewer config file (yaml)")
	effect := flag.Int("effect", -1, "starting effect id (overrides config)")
	size := flag.String("size", "", "starting size: regular or large (overrides config)")
	lazy := flag.Bool("lazy", false, "decode splatters on first draw instead of at startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *effect >= 0 {
		cfg.Effect = *effect
	}
	if *size != "" {
		if _, err := splatter.ParseSize(*size); err != nil {
			log.Fatal(err)
		}
		cfg.Size = *size
	}
	if *lazy {
		cfg.Warm = false
	}

	if cfg.Warm {
		drawing.Precompute()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("splatter viewer")

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
