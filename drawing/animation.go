package drawing

import (
	"image"
	"math"

	"github.com/milk9111/splatter/splatter"
)

// Animation plays one splatter effect at a fixed position and holds the final
// frame once it gets there.
type Animation struct {
	Effect splatter.EffectID
	Size   splatter.Size
	X, Y   float64
	FPS    int

	frame       int
	tick        int
	ticksPerFrm int
}

// NewAnimation creates an Animation. fps defaults to 12 if <= 0 and assumes
// Update is called 60 times per second.
func NewAnimation(effect splatter.EffectID, size splatter.Size, x, y float64, fps int) *Animation {
	if fps <= 0 {
		fps = 12
	}
	return &Animation{
		Effect:      effect,
		Size:        size,
		X:           x,
		Y:           y,
		FPS:         fps,
		ticksPerFrm: int(math.Max(1, math.Round(60.0/float64(fps)))),
	}
}

// Update advances the animation by one game tick.
func (a *Animation) Update() {
	if a == nil || a.Done() {
		return
	}
	a.tick++
	if a.tick >= a.ticksPerFrm {
		a.tick = 0
		a.frame++
	}
}

// Frame is the current frame index. After SetFrame it may lie past the last
// frame; Current still resolves to the last one.
func (a *Animation) Frame() int { return a.frame }

// SetFrame jumps to frame i, typically from an external effect timer.
// Negative values restart the animation.
func (a *Animation) SetFrame(i int) {
	if a == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	a.frame = i
	a.tick = 0
}

// Done reports whether the animation has reached its final frame.
func (a *Animation) Done() bool { return a.frame >= splatter.FrameCount-1 }

// Reset restarts the animation from the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.frame = 0
	a.tick = 0
}

// Current resolves the bitmap and anchor for the current frame.
func (a *Animation) Current() (*splatter.Bitmap, image.Point) {
	return For(a.Effect, a.frame, a.Size, a.X, a.Y)
}
