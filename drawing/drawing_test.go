package drawing

import (
	"image"
	"testing"

	"github.com/milk9111/splatter/splatter"
)

func TestForMatchesAnchorAndClamp(t *testing.T) {
	cases := []struct {
		name   string
		effect splatter.EffectID
		frame  int
		size   splatter.Size
		x, y   float64
		wantAt image.Point
		extent int
	}{
		{"regular", 1, 0, splatter.Regular, 200, 200, image.Pt(80, 80), 240},
		{"large", 2, 3, splatter.Large, 200, 200, image.Pt(0, 0), 400},
		{"fraction", 3, 1, splatter.Regular, 150.7, 150.7, image.Pt(30, 30), 240},
		{"overrun", 0, 12, splatter.Large, 0, 0, image.Pt(-200, -200), 400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bmp, at := For(c.effect, c.frame, c.size, c.x, c.y)
			if at != c.wantAt {
				t.Fatalf("expected anchor %v, got %v", c.wantAt, at)
			}
			if bmp.Width() != c.extent || bmp.Height() != c.extent {
				t.Fatalf("expected %dx%d bitmap, got %dx%d", c.extent, c.extent, bmp.Width(), bmp.Height())
			}
		})
	}
}

func TestForUnknownEffectDrawsDefault(t *testing.T) {
	got, _ := For(99, 2, splatter.Regular, 0, 0)
	want, _ := For(0, 2, splatter.Regular, 0, 0)
	if got != want {
		t.Fatalf("expected effect 0's frame for effect 99")
	}
}

func TestPrecomputeIsIdempotent(t *testing.T) {
	Precompute()
	decodes := registry().Cache().Decodes()
	if want := int64(splatter.EffectCount * splatter.SizeCount * splatter.FrameCount); decodes != want {
		t.Fatalf("expected %d decodes, got %d", want, decodes)
	}

	Precompute()
	For(3, 3, splatter.Large, 10, 10)
	if got := registry().Cache().Decodes(); got != decodes {
		t.Fatalf("expected no further decodes, got %d", got-decodes)
	}
}

func TestAnimationHoldsLastFrame(t *testing.T) {
	a := NewAnimation(2, splatter.Large, 200, 200, 30)
	if a.ticksPerFrm != 2 {
		t.Fatalf("expected 2 ticks per frame, got %d", a.ticksPerFrm)
	}

	for i := 0; i < 100; i++ {
		a.Update()
	}
	if !a.Done() || a.Frame() != splatter.FrameCount-1 {
		t.Fatalf("expected to hold frame %d, got %d", splatter.FrameCount-1, a.Frame())
	}

	a.SetFrame(42)
	got, at := a.Current()
	want, _ := For(2, splatter.FrameCount-1, splatter.Large, 200, 200)
	if got != want || at != image.Pt(0, 0) {
		t.Fatalf("frame past the end should resolve to the last frame")
	}

	a.Reset()
	if a.Frame() != 0 || a.Done() {
		t.Fatalf("Reset should return to frame 0")
	}
}

func TestAnimationDefaultsFPS(t *testing.T) {
	a := NewAnimation(0, splatter.Regular, 0, 0, 0)
	if a.FPS != 12 || a.ticksPerFrm != 5 {
		t.Fatalf("expected 12 fps / 5 ticks, got %d / %d", a.FPS, a.ticksPerFrm)
	}
	var nilAnim *Animation
	nilAnim.Update()
	nilAnim.Reset()
}
