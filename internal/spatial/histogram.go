package spatial

import (
	"errors"
	"sort"
)

// Degree-to-mile conversion near Los Angeles (34°N). These are local
// approximations, not general-purpose constants.
const (
	MilesPerDegreeLat = 68.92
	MilesPerDegreeLon = 57.41
)

// ErrOutsideExtent is returned when a point of interest falls outside the
// min/max extent of the binned data, so no bin contains it.
var ErrOutsideExtent = errors.New("point lies outside the data extent")

// Edges builds ascending bin edges starting at min, spaced by step, ending at
// the first edge at or beyond max. At least two edges are always returned.
func Edges(min, max, step float64) []float64 {
	edges := []float64{min}
	e := min
	for e < max {
		e += step
		edges = append(edges, e)
	}
	if len(edges) < 2 {
		edges = append(edges, min+step)
	}
	return edges
}

// Histogram2D is a count grid over longitude x latitude bin edges.
// Counts[i][j] is the number of points with longitude in bin i and latitude
// in bin j. A value equal to the last edge is counted into the last bin.
type Histogram2D struct {
	LonEdges []float64
	LatEdges []float64
	Counts   [][]int
	Total    int
}

// NewHistogram2D bins the given coordinate slices over the edge grids.
// Points outside the edge range are ignored.
func NewHistogram2D(lons, lats []float64, lonEdges, latEdges []float64) *Histogram2D {
	h := &Histogram2D{
		LonEdges: lonEdges,
		LatEdges: latEdges,
		Counts:   make([][]int, len(lonEdges)-1),
	}
	for i := range h.Counts {
		h.Counts[i] = make([]int, len(latEdges)-1)
	}
	for k := range lons {
		i, ok := binFor(lonEdges, lons[k])
		if !ok {
			continue
		}
		j, ok := binFor(latEdges, lats[k])
		if !ok {
			continue
		}
		h.Counts[i][j]++
		h.Total++
	}
	return h
}

// Max returns the largest bin count.
func (h *Histogram2D) Max() int {
	max := 0
	for i := range h.Counts {
		for _, c := range h.Counts[i] {
			if c > max {
				max = c
			}
		}
	}
	return max
}

// Locate returns the (lon, lat) bin indices containing the point, or
// ErrOutsideExtent when the point is outside the grid.
func (h *Histogram2D) Locate(lon, lat float64) (int, int, error) {
	i, err := BinBelow(h.LonEdges, lon)
	if err != nil {
		return 0, 0, err
	}
	j, err := BinBelow(h.LatEdges, lat)
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

// Center returns the center coordinate of bin (i, j).
func (h *Histogram2D) Center(i, j int) (lon, lat float64) {
	lon = (h.LonEdges[i] + h.LonEdges[i+1]) / 2
	lat = (h.LatEdges[j] + h.LatEdges[j+1]) / 2
	return lon, lat
}

// BinBelow returns the index of the last edge strictly less than v, which is
// the bin containing v. It returns ErrOutsideExtent when v is at or below the
// first edge, or beyond the last edge (no bin exists past it).
func BinBelow(edges []float64, v float64) (int, error) {
	i := sort.SearchFloat64s(edges, v) // first index with edges[i] >= v
	if i == 0 {
		return 0, ErrOutsideExtent
	}
	if i-1 >= len(edges)-1 {
		// v is beyond the last edge; the last "bin" is not a bin.
		return 0, ErrOutsideExtent
	}
	return i - 1, nil
}

// binFor places v into its half-open bin [edges[i], edges[i+1]). The last
// edge is inclusive so the data maximum lands in the final bin.
func binFor(edges []float64, v float64) (int, bool) {
	if v < edges[0] || v > edges[len(edges)-1] {
		return 0, false
	}
	if v == edges[len(edges)-1] {
		return len(edges) - 2, true
	}
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i, true
	}
	return i - 1, true
}
