package service

import (
	"fmt"
	"math"

	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/spatial"
)

// CoordinateSource yields the (lon, lat) slices of citations matching a
// filter. Satisfied by repository.CitationRepository.
type CoordinateSource interface {
	Coordinates(filter models.CitationFilter) (lons, lats []float64, err error)
}

// Rate estimation defaults.
const (
	DefaultBinSizeMiles = 0.25
	DefaultYearsSpan    = 1.0
	DaysPerYear         = 365.0
)

// RateService estimates the normalized citation rate at a point of interest.
type RateService struct {
	source CoordinateSource
}

// NewRateService creates a new rate service.
func NewRateService(source CoordinateSource) *RateService {
	return &RateService{source: source}
}

// Estimate bins the filtered citations into a 2D histogram with binSizeMi-
// sized cells over the data extent, locates the bin containing the point,
// and reports count / (365 * years) / binSizeMi^2 to two decimals, alongside
// the truncated maximum rate over all bins.
func (s *RateService) Estimate(filter models.CitationFilter, point models.Coordinate, binSizeMi, years float64) (*models.RateResponse, error) {
	if binSizeMi <= 0 {
		binSizeMi = DefaultBinSizeMiles
	}
	if years <= 0 {
		years = DefaultYearsSpan
	}

	lons, lats, err := s.source.Coordinates(filter)
	if err != nil {
		return nil, err
	}
	if len(lons) == 0 {
		return nil, fmt.Errorf("no citations match the given filters")
	}

	h := spatial.NewHistogram2D(lons, lats,
		spatial.Edges(minOf(lons), maxOf(lons), binSizeMi/spatial.MilesPerDegreeLon),
		spatial.Edges(minOf(lats), maxOf(lats), binSizeMi/spatial.MilesPerDegreeLat),
	)

	i, j, err := h.Locate(point.Lon, point.Lat)
	if err != nil {
		return nil, err
	}

	norm := DaysPerYear * years * binSizeMi * binSizeMi
	count := h.Counts[i][j]
	centerLon, centerLat := h.Center(i, j)

	return &models.RateResponse{
		Rate:       math.Round(float64(count)/norm*100) / 100,
		MaxRate:    int(float64(h.Max()) / norm),
		Units:      "citations/day/mi^2",
		Count:      count,
		Matched:    len(lons),
		Bin:        models.BinIndex{LonIdx: i, LatIdx: j},
		BinCenter:  models.Coordinate{Lon: centerLon, Lat: centerLat},
		DistanceMi: spatial.HaversineMiles(point.Lat, point.Lon, centerLat, centerLon),
		BinSizeMi:  binSizeMi,
		Years:      years,
		Location:   point,
	}, nil
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
