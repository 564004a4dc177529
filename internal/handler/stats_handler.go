package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/service"
	"github.com/parkgrid/citations-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for aggregate statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Summary handles GET /api/v1/stats/summary
func (h *StatsHandler) Summary(c *gin.Context) {
	years, err := queryFloat(c, "years", service.DefaultYearsSpan)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	summary, err := h.service.Summary(years)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute summary", err)
		return
	}
	response.Success(c, summary)
}
