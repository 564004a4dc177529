package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/parkgrid/citations-backend-go/internal/spatial"
)

func TestHeatmapEncodesPNG(t *testing.T) {
	lonEdges := []float64{0, 0.5, 1.0}
	latEdges := []float64{0, 0.25, 0.5, 0.75, 1.0}
	lons := []float64{0.1, 0.1, 0.6}
	lats := []float64{0.1, 0.1, 0.9}

	h := spatial.NewHistogram2D(lons, lats, lonEdges, latEdges)

	var buf bytes.Buffer
	markerLon, markerLat := 0.6, 0.9
	if err := Heatmap(&buf, h, &markerLon, &markerLat); err != nil {
		t.Fatalf("Heatmap returned error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 2*CellPixels || bounds.Dy() != 4*CellPixels {
		t.Errorf("image is %dx%d; want %dx%d",
			bounds.Dx(), bounds.Dy(), 2*CellPixels, 4*CellPixels)
	}
}

func TestHeatmapMarkerOutsideGridIgnored(t *testing.T) {
	h := spatial.NewHistogram2D(nil, nil, []float64{0, 1}, []float64{0, 1})

	var buf bytes.Buffer
	markerLon, markerLat := 5.0, 5.0
	if err := Heatmap(&buf, h, &markerLon, &markerLat); err != nil {
		t.Fatalf("Heatmap with out-of-grid marker returned error: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
}
