package spatial

import "github.com/golang/geo/s2"

const (
	EarthRadiusMeters = 6371000.0 // mean radius
	MetersPerMile     = 1609.344
)

// HaversineMeters returns the great-circle distance between two points in
// meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// HaversineMiles returns the great-circle distance in statute miles.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineMeters(lat1, lon1, lat2, lon2) / MetersPerMile
}
