package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/service"
	"github.com/parkgrid/citations-backend-go/internal/spatial"
	"github.com/parkgrid/citations-backend-go/pkg/response"
)

// RateHandler handles HTTP requests for point-rate estimation and nearby
// queries.
type RateHandler struct {
	rate     *service.RateService
	nearby   *service.NearbyService
	resolver *service.POIResolver
}

// NewRateHandler creates a new rate handler.
func NewRateHandler(rate *service.RateService, nearby *service.NearbyService, resolver *service.POIResolver) *RateHandler {
	return &RateHandler{rate: rate, nearby: nearby, resolver: resolver}
}

// Estimate handles GET /api/v1/rate
func (h *RateHandler) Estimate(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return
	}
	binSize, err := queryFloat(c, "fmil", service.DefaultBinSizeMiles)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	years, err := queryFloat(c, "years", service.DefaultYearsSpan)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	poi, err := bindPOI(c, true)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid point of interest", err)
		return
	}
	point, err := h.resolver.Resolve(c.Request.Context(), *poi)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Failed to resolve point of interest", err)
		return
	}

	result, err := h.rate.Estimate(filter, point, binSize, years)
	if err != nil {
		if errors.Is(err, spatial.ErrOutsideExtent) {
			response.Error(c, http.StatusUnprocessableEntity, "Point of interest outside data extent", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to estimate rate", err)
		return
	}
	result.PlaceName = poi.Place
	response.Success(c, result)
}

// Nearby handles GET /api/v1/nearby
func (h *RateHandler) Nearby(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return
	}
	radius, err := queryFloat(c, "radius", service.DefaultNearbyRadiusMiles)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	years, err := queryFloat(c, "years", service.DefaultYearsSpan)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	poi, err := bindPOI(c, true)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid point of interest", err)
		return
	}
	point, err := h.resolver.Resolve(c.Request.Context(), *poi)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Failed to resolve point of interest", err)
		return
	}

	result, err := h.nearby.Count(filter, point, radius, years)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to run nearby query", err)
		return
	}
	response.Success(c, result)
}
