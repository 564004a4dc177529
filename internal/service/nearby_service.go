package service

import (
	"math"

	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/spatial"
)

// DefaultNearbyRadiusMiles is used when a radius is not supplied.
const DefaultNearbyRadiusMiles = 0.5

// NearbyService answers radius queries around a point of interest.
type NearbyService struct {
	source CoordinateSource
}

// NewNearbyService creates a new nearby service.
func NewNearbyService(source CoordinateSource) *NearbyService {
	return &NearbyService{source: source}
}

// Count indexes the filtered citations in an r-tree and counts those within
// radiusMi of the point, reporting the per-day rate over the dataset span.
func (s *NearbyService) Count(filter models.CitationFilter, point models.Coordinate, radiusMi, years float64) (*models.NearbyResponse, error) {
	if radiusMi <= 0 {
		radiusMi = DefaultNearbyRadiusMiles
	}
	if years <= 0 {
		years = DefaultYearsSpan
	}

	lons, lats, err := s.source.Coordinates(filter)
	if err != nil {
		return nil, err
	}

	count := spatial.NewPointIndex(lons, lats).CountWithin(point.Lon, point.Lat, radiusMi)
	return &models.NearbyResponse{
		Count:    count,
		PerDay:   math.Round(float64(count)/(DaysPerYear*years)*100) / 100,
		RadiusMi: radiusMi,
		Years:    years,
		Location: point,
	}, nil
}
