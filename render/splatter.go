package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splatter/drawing"
	"github.com/milk9111/splatter/splatter"
)

// DrawSplatter draws one frame of a splatter effect centered on (x, y).
func DrawSplatter(screen *ebiten.Image, effect splatter.EffectID, frame int, size splatter.Size, x, y float64) {
	bmp, at := drawing.For(effect, frame, size, x, y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(Image(bmp), op)
}

// DrawAnimation draws the current frame of a.
func DrawAnimation(screen *ebiten.Image, a *drawing.Animation) {
	if a == nil {
		return
	}
	DrawSplatter(screen, a.Effect, a.Frame(), a.Size, a.X, a.Y)
}
