package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/parkgrid/citations-backend-go/internal/spatial"
)

// CellPixels is the rendered size of one histogram cell.
const CellPixels = 4

var markerColor = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}

// Heatmap writes a log-scaled grayscale PNG of the histogram, optionally
// drawing a crosshair at the marker's bin. Rows are flipped so north is up.
func Heatmap(w io.Writer, h *spatial.Histogram2D, markerLon, markerLat *float64) error {
	cols := len(h.Counts)     // longitude bins
	rowsN := len(h.Counts[0]) // latitude bins
	img := image.NewRGBA(image.Rect(0, 0, cols*CellPixels, rowsN*CellPixels))

	logMax := math.Log1p(float64(h.Max()))
	for i := 0; i < cols; i++ {
		for j := 0; j < rowsN; j++ {
			var v uint8
			if c := h.Counts[i][j]; c > 0 && logMax > 0 {
				v = uint8(math.Log1p(float64(c)) / logMax * 255)
			}
			fillCell(img, i, rowsN-1-j, color.RGBA{R: v, G: v, B: v, A: 0xff})
		}
	}

	if markerLon != nil && markerLat != nil {
		if i, j, err := h.Locate(*markerLon, *markerLat); err == nil {
			drawCrosshair(img, i, rowsN-1-j, cols, rowsN)
		}
	}

	return png.Encode(w, img)
}

func fillCell(img *image.RGBA, cx, cy int, c color.RGBA) {
	for dx := 0; dx < CellPixels; dx++ {
		for dy := 0; dy < CellPixels; dy++ {
			img.SetRGBA(cx*CellPixels+dx, cy*CellPixels+dy, c)
		}
	}
}

func drawCrosshair(img *image.RGBA, cx, cy, cols, rows int) {
	px := cx*CellPixels + CellPixels/2
	py := cy*CellPixels + CellPixels/2
	for x := 0; x < cols*CellPixels; x++ {
		img.SetRGBA(x, py, markerColor)
	}
	for y := 0; y < rows*CellPixels; y++ {
		img.SetRGBA(px, y, markerColor)
	}
}
