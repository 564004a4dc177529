package models

import "errors"

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// PointOfInterest is a tagged variant: either a free-text place name to be
// geocoded, or explicit coordinates. Exactly one arm must be set.
type PointOfInterest struct {
	Place  string
	Coords *Coordinate
}

// ErrAmbiguousPOI is returned when a request sets both or neither arm.
var ErrAmbiguousPOI = errors.New("point of interest requires exactly one of place or lon/lat")

// NamedLocation builds a PoI from a free-text place description.
func NamedLocation(place string) PointOfInterest {
	return PointOfInterest{Place: place}
}

// CoordinateLocation builds a PoI from explicit coordinates.
func CoordinateLocation(lon, lat float64) PointOfInterest {
	return PointOfInterest{Coords: &Coordinate{Lon: lon, Lat: lat}}
}

// Validate checks that exactly one arm is set.
func (p PointOfInterest) Validate() error {
	if (p.Place == "") == (p.Coords == nil) {
		return ErrAmbiguousPOI
	}
	return nil
}
