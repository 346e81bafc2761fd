package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splatter/splatter"
)

var (
	mu     sync.Mutex
	images = map[*splatter.Bitmap]*ebiten.Image{}
)

// Image returns the GPU image for bmp, uploading it on first use. Bitmaps
// live for the whole process, so uploads are kept for the same lifetime.
func Image(bmp *splatter.Bitmap) *ebiten.Image {
	if bmp == nil {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	if img, ok := images[bmp]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(bmp.NRGBA())
	images[bmp] = img
	return img
}

// Uploaded reports how many bitmaps have been turned into GPU images.
func Uploaded() int {
	mu.Lock()
	defer mu.Unlock()
	return len(images)
}
