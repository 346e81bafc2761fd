// Package drawing is the entry point the renderer uses to place splatter
// effects. All frames come from the embedded asset table and are decoded on
// first use, once per process.
package drawing

import (
	"image"
	"log"
	"sync"
	"time"

	"github.com/milk9111/splatter/assets"
	"github.com/milk9111/splatter/splatter"
)

var registry = sync.OnceValue(func() *splatter.Registry {
	return splatter.NewRegistry(splatter.NewCache(assets.Splatters()))
})

// For returns the bitmap for one splatter frame and the top-left point that
// centers it on (x, y). Frames past the end hold the last frame; unknown
// effects draw as effect 0.
func For(effect splatter.EffectID, frame int, size splatter.Size, x, y float64) (*splatter.Bitmap, image.Point) {
	return registry().Resolve(effect, frame, size, x, y)
}

// Precompute decodes every splatter up front so no draw call pays for it.
func Precompute() {
	start := time.Now()
	r := registry()
	r.WarmAll()
	log.Printf("splatters: warmed %d frames in %s", r.Cache().Decodes(), time.Since(start).Round(time.Millisecond))
}
