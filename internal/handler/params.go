package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/models"
)

// bindFilter parses the day/time categorical filters from query parameters,
// rejecting unknown values.
func bindFilter(c *gin.Context) (models.CitationFilter, error) {
	var filter models.CitationFilter

	day, err := models.ParseDayFilter(c.Query("day"))
	if err != nil {
		return filter, err
	}
	tod, err := models.ParseTimeOfDay(c.Query("time"))
	if err != nil {
		return filter, err
	}

	filter.Day = day
	filter.Time = tod
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "100"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 1000 {
		filter.PageSize = 100
	}
	return filter, nil
}

// bindPOI parses the point-of-interest variant from query parameters:
// either place, or lon and lat. Returns nil when neither arm is present and
// required is false.
func bindPOI(c *gin.Context, required bool) (*models.PointOfInterest, error) {
	place := c.Query("place")
	lonStr, latStr := c.Query("lon"), c.Query("lat")

	if place == "" && lonStr == "" && latStr == "" {
		if required {
			return nil, models.ErrAmbiguousPOI
		}
		return nil, nil
	}

	if place != "" {
		if lonStr != "" || latStr != "" {
			return nil, models.ErrAmbiguousPOI
		}
		poi := models.NamedLocation(place)
		return &poi, nil
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("bad lon: %w", err)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("bad lat: %w", err)
	}
	poi := models.CoordinateLocation(lon, lat)
	return &poi, nil
}

func queryFloat(c *gin.Context, name string, fallback float64) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s: %w", name, err)
	}
	return v, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s: %w", name, err)
	}
	return v, nil
}
