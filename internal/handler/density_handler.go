package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/render"
	"github.com/parkgrid/citations-backend-go/internal/service"
	"github.com/parkgrid/citations-backend-go/pkg/response"
)

// DensityHandler handles HTTP requests for density grids.
type DensityHandler struct {
	density  *service.DensityService
	resolver *service.POIResolver
}

// NewDensityHandler creates a new density handler.
func NewDensityHandler(density *service.DensityService, resolver *service.POIResolver) *DensityHandler {
	return &DensityHandler{density: density, resolver: resolver}
}

// Grid handles GET /api/v1/density
func (h *DensityHandler) Grid(c *gin.Context) {
	filter, bins, marker, ok := h.bindDensityQuery(c)
	if !ok {
		return
	}

	grid, err := h.density.Grid(filter, bins, marker)
	if err != nil {
		if errors.Is(err, service.ErrOutsideViewport) {
			response.Error(c, http.StatusUnprocessableEntity, "Marker outside viewport", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build density grid", err)
		return
	}
	response.Success(c, grid)
}

// Image handles GET /api/v1/density/image.png
func (h *DensityHandler) Image(c *gin.Context) {
	filter, bins, marker, ok := h.bindDensityQuery(c)
	if !ok {
		return
	}

	hist, err := h.density.Histogram(filter, bins)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build density grid", err)
		return
	}

	var markerLon, markerLat *float64
	if marker != nil {
		markerLon, markerLat = &marker.Lon, &marker.Lat
	}

	var buf bytes.Buffer
	if err := render.Heatmap(&buf, hist, markerLon, markerLat); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to render heatmap", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *DensityHandler) bindDensityQuery(c *gin.Context) (models.CitationFilter, int, *models.Coordinate, bool) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return filter, 0, nil, false
	}
	bins, err := queryInt(c, "bins", 0)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, 0, nil, false
	}

	poi, err := bindPOI(c, false)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid point of interest", err)
		return filter, 0, nil, false
	}

	var marker *models.Coordinate
	if poi != nil {
		coord, err := h.resolver.Resolve(c.Request.Context(), *poi)
		if err != nil {
			response.Error(c, http.StatusBadGateway, "Failed to resolve point of interest", err)
			return filter, 0, nil, false
		}
		marker = &coord
	}
	return filter, bins, marker, true
}
