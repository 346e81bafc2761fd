package splatter

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

var (
	// ErrBadEncoding reports asset text that is not unpadded base64.
	ErrBadEncoding = errors.New("splatter: bad asset encoding")
	// ErrBadImage reports an asset payload that is not a PNG.
	ErrBadImage = errors.New("splatter: bad asset image")
)

// Bitmap is a decoded splatter frame in NRGBA layout. A Bitmap is shared with
// every caller that resolves it and must never be modified.
type Bitmap struct {
	img *image.NRGBA
}

// ColorModel, Bounds and At make a Bitmap an image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

func (b *Bitmap) Bounds() image.Rectangle { return b.img.Rect }

func (b *Bitmap) At(x, y int) color.Color { return b.img.At(x, y) }

// Width returns the frame width in pixels.
func (b *Bitmap) Width() int { return b.img.Rect.Dx() }

// Height returns the frame height in pixels.
func (b *Bitmap) Height() int { return b.img.Rect.Dy() }

// NRGBA exposes the backing image for renderers that upload pixels directly.
// The returned image is read-only.
func (b *Bitmap) NRGBA() *image.NRGBA { return b.img }

// Decode turns one encoded asset (unpadded standard base64 of a PNG) into a
// Bitmap. Whatever the PNG's own color type, the result is NRGBA.
func Decode(encoded string) (*Bitmap, error) {
	data, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	sr := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	draw.Copy(dst, image.Point{}, src, sr, draw.Src, nil)
	return &Bitmap{img: dst}, nil
}

// MustDecode is like Decode but panics on failure. The asset table is fixed
// at build time, so a bad entry is a packaging defect rather than input to
// recover from.
func MustDecode(encoded string) *Bitmap {
	bmp, err := Decode(encoded)
	if err != nil {
		panic(fmt.Sprintf("splatter: decode asset: %v", err))
	}
	return bmp
}
