package service

import (
	"context"
	"fmt"

	"github.com/parkgrid/citations-backend-go/internal/models"
)

// Geocoder resolves a free-text place name to coordinates. Satisfied by
// geocode.Client.
type Geocoder interface {
	Locate(ctx context.Context, place string) (lon, lat float64, err error)
}

// POIResolver turns a point-of-interest variant into concrete coordinates.
type POIResolver struct {
	geocoder Geocoder
}

// NewPOIResolver creates a new resolver. The geocoder may be nil when no
// geocoding identifier is configured; named lookups then fail explicitly.
func NewPOIResolver(geocoder Geocoder) *POIResolver {
	return &POIResolver{geocoder: geocoder}
}

// Resolve returns the PoI's coordinates, geocoding the named arm if needed.
func (r *POIResolver) Resolve(ctx context.Context, poi models.PointOfInterest) (models.Coordinate, error) {
	if err := poi.Validate(); err != nil {
		return models.Coordinate{}, err
	}
	if poi.Coords != nil {
		return *poi.Coords, nil
	}
	if r.geocoder == nil {
		return models.Coordinate{}, fmt.Errorf("geocoding is not configured")
	}
	lon, lat, err := r.geocoder.Locate(ctx, poi.Place)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("failed to resolve %q: %w", poi.Place, err)
	}
	return models.Coordinate{Lon: lon, Lat: lat}, nil
}
