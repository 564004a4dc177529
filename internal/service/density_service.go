package service

import (
	"errors"
	"math"

	"github.com/tidwall/geojson/geometry"

	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/spatial"
)

// LAViewport is the fixed rendering window over the Los Angeles basin.
var LAViewport = models.Viewport{
	MinLon: -118.7, MaxLon: -118.0,
	MinLat: 33.7, MaxLat: 34.4,
}

var laViewportRect = geometry.Rect{
	Min: geometry.Point{X: LAViewport.MinLon, Y: LAViewport.MinLat},
	Max: geometry.Point{X: LAViewport.MaxLon, Y: LAViewport.MaxLat},
}

// ErrOutsideViewport is returned when a requested marker falls outside the
// fixed viewport.
var ErrOutsideViewport = errors.New("marker lies outside the density viewport")

// DensityService builds log-scaled density grids over the fixed viewport.
type DensityService struct {
	source      CoordinateSource
	defaultBins int
}

// NewDensityService creates a new density service.
func NewDensityService(source CoordinateSource, defaultBins int) *DensityService {
	return &DensityService{source: source, defaultBins: defaultBins}
}

// Histogram bins the filtered citations over the viewport with bins cells
// per axis. Points outside the viewport are excluded.
func (s *DensityService) Histogram(filter models.CitationFilter, bins int) (*spatial.Histogram2D, error) {
	if bins <= 0 {
		bins = s.defaultBins
	}
	lons, lats, err := s.source.Coordinates(filter)
	if err != nil {
		return nil, err
	}

	lonEdges := spatial.Edges(LAViewport.MinLon, LAViewport.MaxLon,
		(LAViewport.MaxLon-LAViewport.MinLon)/float64(bins))
	latEdges := spatial.Edges(LAViewport.MinLat, LAViewport.MaxLat,
		(LAViewport.MaxLat-LAViewport.MinLat)/float64(bins))
	return spatial.NewHistogram2D(lons, lats, lonEdges, latEdges), nil
}

// Grid returns the JSON density grid: non-empty cells with raw counts and
// ln-scaled intensities, plus an optional marker which must lie inside the
// viewport.
func (s *DensityService) Grid(filter models.CitationFilter, bins int, marker *models.Coordinate) (*models.DensityResponse, error) {
	if marker != nil && !laViewportRect.ContainsPoint(geometry.Point{X: marker.Lon, Y: marker.Lat}) {
		return nil, ErrOutsideViewport
	}
	if bins <= 0 {
		bins = s.defaultBins
	}

	h, err := s.Histogram(filter, bins)
	if err != nil {
		return nil, err
	}

	max := h.Max()
	logMax := math.Log1p(float64(max))
	var cells []models.DensityCell
	for i := range h.Counts {
		for j, count := range h.Counts[i] {
			if count == 0 {
				continue
			}
			intensity := 1.0
			if logMax > 0 {
				intensity = math.Log1p(float64(count)) / logMax
			}
			lon, lat := h.Center(i, j)
			cells = append(cells, models.DensityCell{
				Lon:       lon,
				Lat:       lat,
				Count:     count,
				Intensity: intensity,
			})
		}
	}

	return &models.DensityResponse{
		Cells:    cells,
		Bins:     bins,
		MaxCount: max,
		Matched:  h.Total,
		Viewport: LAViewport,
		Marker:   marker,
	}, nil
}
