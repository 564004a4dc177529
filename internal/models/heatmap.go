package models

// Viewport is a fixed lon/lat bounding box for density rendering.
type Viewport struct {
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
}

// DensityCell is one non-empty cell of the density grid.
type DensityCell struct {
	Lon       float64 `json:"lon"` // cell center
	Lat       float64 `json:"lat"`
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"` // ln(1+count)/ln(1+max), 0-1
}

// DensityResponse is the JSON form of the log-scaled density histogram.
type DensityResponse struct {
	Cells    []DensityCell `json:"cells"`
	Bins     int           `json:"bins"`
	MaxCount int           `json:"max_count"`
	Matched  int           `json:"matched"`
	Viewport Viewport      `json:"viewport"`
	Marker   *Coordinate   `json:"marker,omitempty"`
}

// BinIndex identifies the histogram cell containing a point of interest.
type BinIndex struct {
	LonIdx int `json:"lon_idx"`
	LatIdx int `json:"lat_idx"`
}

// RateResponse reports the normalized citation rate at a point of interest.
type RateResponse struct {
	Rate       float64    `json:"rate"`     // citations/day/mi^2, 2dp
	MaxRate    int        `json:"max_rate"` // max over all bins, truncated
	Units      string     `json:"units"`
	Count      int        `json:"count"` // raw count in the PoI's bin
	Matched    int        `json:"matched"`
	Bin        BinIndex   `json:"bin"`
	BinCenter  Coordinate `json:"bin_center"`
	DistanceMi float64    `json:"distance_mi"` // PoI to bin center
	BinSizeMi  float64    `json:"bin_size_mi"`
	Years      float64    `json:"years"`
	Location   Coordinate `json:"location"`
	PlaceName  string     `json:"place,omitempty"`
}

// NearbyResponse reports citations within a radius of a point of interest.
type NearbyResponse struct {
	Count    int        `json:"count"`
	PerDay   float64    `json:"per_day"` // count / (365 * years)
	RadiusMi float64    `json:"radius_mi"`
	Years    float64    `json:"years"`
	Location Coordinate `json:"location"`
}
