package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/service"
	"github.com/parkgrid/citations-backend-go/pkg/response"
)

// IngestHandler handles HTTP requests for ingest tasks.
type IngestHandler struct {
	service *service.IngestService
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(service *service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// CreateRaw handles POST /api/v1/ingest/raw
func (h *IngestHandler) CreateRaw(c *gin.Context) {
	var req service.RawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	task, err := h.service.CreateRawTask(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to create extraction task", err)
		return
	}
	response.Success(c, task)
}

// CreateReduced handles POST /api/v1/ingest/reduced
func (h *IngestHandler) CreateReduced(c *gin.Context) {
	var req service.ReducedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	task, err := h.service.CreateReducedTask(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to create import task", err)
		return
	}
	response.Success(c, task)
}

// GetTask handles GET /api/v1/ingest/tasks/:id
func (h *IngestHandler) GetTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid task id", err)
		return
	}

	task, err := h.service.GetTask(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Task not found", err)
		return
	}
	response.Success(c, task)
}

// ListTasks handles GET /api/v1/ingest/tasks
func (h *IngestHandler) ListTasks(c *gin.Context) {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	tasks, err := h.service.ListTasks(c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}
	response.Success(c, gin.H{
		"data":  tasks,
		"count": len(tasks),
	})
}
