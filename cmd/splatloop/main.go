package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splatter/drawing"
	"github.com/milk9111/splatter/render"
	"github.com/milk9111/splatter/splatter"
)

// galleryGame loops every effect side by side at one size.
type galleryGame struct {
	size        splatter.Size
	current     int
	tick        int
	ticksPerFrm int
}

func (g *galleryGame) Update() error {
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % splatter.FrameCount
	}
	return nil
}

func (g *galleryGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	extent := float64(g.size.Extent())
	for id := 0; id < splatter.EffectCount; id++ {
		cx := extent/2 + float64(id)*extent
		render.DrawSplatter(screen, splatter.EffectID(id), g.current, g.size, cx, extent/2)
	}
}

func (g *galleryGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return splatter.EffectCount * g.size.Extent(), g.size.Extent()
}

func main() {
	sizeName := flag.String("size", "regular", "size variant: regular or large")
	fps := flag.Int("fps", 8, "animation frames per second")
	flag.Parse()

	size, err := splatter.ParseSize(*sizeName)
	if err != nil {
		log.Fatal(err)
	}
	ticks := 1
	if *fps > 0 {
		ticks = 60 / *fps
		if ticks < 1 {
			ticks = 1
		}
	}

	drawing.Precompute()

	g := &galleryGame{size: size, ticksPerFrm: ticks}
	ebiten.SetWindowSize(splatter.EffectCount*size.Extent(), size.Extent())
	ebiten.SetWindowTitle("Splatter Gallery")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
