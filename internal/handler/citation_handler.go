package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/repository"
	"github.com/parkgrid/citations-backend-go/pkg/response"
)

// CitationHandler handles HTTP requests for citation listings.
type CitationHandler struct {
	repo *repository.CitationRepository
}

// NewCitationHandler creates a new citation handler.
func NewCitationHandler(repo *repository.CitationRepository) *CitationHandler {
	return &CitationHandler{repo: repo}
}

// List handles GET /api/v1/citations
func (h *CitationHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return
	}

	citations, total, err := h.repo.List(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list citations", err)
		return
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	response.Success(c, models.CitationsResponse{
		Data:       citations,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}
