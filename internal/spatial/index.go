package spatial

import "github.com/tidwall/rtree"

// PointIndex is an in-memory r-tree over citation coordinates, used for
// radius queries around a point of interest.
type PointIndex struct {
	tr   rtree.RTree
	size int
}

// NewPointIndex builds an index from parallel lon/lat slices.
func NewPointIndex(lons, lats []float64) *PointIndex {
	idx := &PointIndex{}
	for i := range lons {
		pt := [2]float64{lons[i], lats[i]}
		idx.tr.Insert(pt, pt, i)
	}
	idx.size = len(lons)
	return idx
}

// Len returns the number of indexed points.
func (idx *PointIndex) Len() int {
	return idx.size
}

// CountWithin counts indexed points within radiusMi statute miles of the
// given point. The r-tree narrows candidates with a degree-space bounding
// box; haversine confirms each hit.
func (idx *PointIndex) CountWithin(lon, lat, radiusMi float64) int {
	dLon := radiusMi / MilesPerDegreeLon
	dLat := radiusMi / MilesPerDegreeLat
	min := [2]float64{lon - dLon, lat - dLat}
	max := [2]float64{lon + dLon, lat + dLat}

	count := 0
	idx.tr.Search(min, max, func(p, _ [2]float64, _ interface{}) bool {
		if HaversineMiles(lat, lon, p[1], p[0]) <= radiusMi {
			count++
		}
		return true
	})
	return count
}
