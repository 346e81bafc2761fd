package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/splatter/config"
	"github.com/milk9111/splatter/drawing"
	"github.com/milk9111/splatter/render"
	"github.com/milk9111/splatter/splatter"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

var effectKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

type Game struct {
	cfg    config.Viewer
	effect splatter.EffectID
	size   splatter.Size

	splatters []*drawing.Animation
	clipboard bool
	status    string

	controls *viewerUI
}

func NewGame(cfg config.Viewer) *Game {
	g := &Game{
		cfg:    cfg,
		effect: splatter.EffectID(cfg.Effect),
		size:   cfg.SplatterSize(),
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}
	g.controls = newViewerUI(g)
	return g
}

func (g *Game) Update() error {
	g.controls.ui.Update()

	for i, k := range effectKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.selectEffect(splatter.EffectID(i))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.selectSize((g.size + 1) % splatter.SizeCount)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.controls.covers(x, y) {
			g.spawn(float64(x), float64(y))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyLast()
	}

	for _, a := range g.splatters {
		a.Update()
	}
	return nil
}

func (g *Game) selectEffect(id splatter.EffectID) { g.effect = id }

func (g *Game) selectSize(size splatter.Size) { g.size = size }

func (g *Game) clear() { g.splatters = g.splatters[:0] }

func (g *Game) spawn(x, y float64) {
	if len(g.splatters) >= g.cfg.MaxSplatters {
		g.splatters = append(g.splatters[:0], g.splatters[1:]...)
	}
	g.splatters = append(g.splatters, drawing.NewAnimation(g.effect, g.size, x, y, g.cfg.FPS))
}

// copyLast puts the resolve result of the newest splatter on the clipboard.
func (g *Game) copyLast() {
	if len(g.splatters) == 0 {
		return
	}
	a := g.splatters[len(g.splatters)-1]
	_, at := a.Current()
	line := fmt.Sprintf("effect=%d frame=%d size=%v x=%.2f y=%.2f -> %d,%d",
		a.Effect, a.Frame(), a.Size, a.X, a.Y, at.X, at.Y)
	if !g.clipboard {
		g.status = "clipboard unavailable"
		log.Print(line)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(line))
	g.status = "copied: " + line
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Whitesmoke)

	for _, a := range g.splatters {
		render.DrawAnimation(screen, a)
	}

	x, y := ebiten.CursorPosition()
	half := float32(g.size.HalfExtent())
	vector.StrokeRect(screen, float32(x)-half, float32(y)-half, 2*half, 2*half, 1, colornames.Gray, false)

	g.controls.ui.Draw(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  effect: %d  size: %v  splatters: %d  uploaded: %d\n[click] splat  [c] copy\n%s",
		ebiten.ActualFPS(), g.effect, g.size, len(g.splatters), render.Uploaded(), g.status))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
