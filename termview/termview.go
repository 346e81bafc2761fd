// Package termview draws splatter bitmaps into a terminal using half-block
// cells, two pixels per cell.
package termview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/splatter/splatter"
	"golang.org/x/image/draw"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// Fit returns the largest cell grid no bigger than cols x rows that keeps the
// bitmap's aspect ratio. Each cell covers one pixel column and two pixel rows.
func Fit(bmp *splatter.Bitmap, cols, rows int) (int, int) {
	if cols <= 0 || rows <= 0 || bmp.Width() == 0 || bmp.Height() == 0 {
		return 0, 0
	}
	w, h := bmp.Width(), bmp.Height()
	// Try full width first, then fall back to full height.
	fh := cols * h / w
	if (fh+1)/2 <= rows {
		return cols, max(1, (fh+1)/2)
	}
	return max(1, rows*2*w/h), rows
}

// Draw rasterizes bmp into the cols x rows cell region whose top-left cell is
// (x, y). Fully transparent pixels leave the cell at the default style.
func Draw(s tcell.Screen, bmp *splatter.Bitmap, x, y, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, cols, rows*2))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), bmp.NRGBA(), bmp.Bounds(), draw.Src, nil)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := scaled.NRGBAAt(col, row*2)
			bottom := scaled.NRGBAAt(col, row*2+1)
			r, style := cell(top, bottom)
			s.SetContent(x+col, y+row, r, nil, style)
		}
	}
}

func cell(top, bottom color.NRGBA) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case top.A > 0 && bottom.A > 0:
		return upperHalf, style.Foreground(rgb(top)).Background(rgb(bottom))
	case top.A > 0:
		return upperHalf, style.Foreground(rgb(top))
	case bottom.A > 0:
		return lowerHalf, style.Foreground(rgb(bottom))
	}
	return ' ', style
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
