package service

import (
	"fmt"
	"log"
	"os"

	"github.com/parkgrid/citations-backend-go/internal/ingest"
	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/repository"
)

// IngestService runs batch extraction and import as tracked async tasks.
type IngestService struct {
	citations *repository.CitationRepository
	tasks     *repository.TaskRepository

	sentinelLow  float64
	sentinelHigh float64
}

// NewIngestService creates a new ingest service with the configured sentinel
// bounds for raw coordinate validation.
func NewIngestService(citations *repository.CitationRepository, tasks *repository.TaskRepository, sentinelLow, sentinelHigh float64) *IngestService {
	return &IngestService{
		citations:    citations,
		tasks:        tasks,
		sentinelLow:  sentinelLow,
		sentinelHigh: sentinelHigh,
	}
}

// RawRequest describes an extraction run over the raw citation CSV.
type RawRequest struct {
	Path       string `json:"path" binding:"required"`
	YearFrom   int    `json:"yearFrom" binding:"required"`
	YearTo     int    `json:"yearTo" binding:"required"`
	ExportPath string `json:"exportPath"`
}

// ReducedRequest describes an import of an already-reduced CSV.
type ReducedRequest struct {
	Path string `json:"path" binding:"required"`
}

// CreateRawTask validates the request, records a pending task, and runs the
// extraction in the background.
func (s *IngestService) CreateRawTask(req RawRequest) (*models.IngestTask, error) {
	if req.YearFrom >= req.YearTo {
		return nil, fmt.Errorf("year range [%d, %d) is empty", req.YearFrom, req.YearTo)
	}
	if _, err := os.Stat(req.Path); err != nil {
		return nil, fmt.Errorf("source file is not readable: %w", err)
	}

	task := &models.IngestTask{
		Kind:       models.TaskKindRaw,
		Status:     models.TaskStatusPending,
		SourcePath: req.Path,
		YearFrom:   req.YearFrom,
		YearTo:     req.YearTo,
	}
	if req.ExportPath != "" {
		task.ExportPath = &req.ExportPath
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}

	go s.runRaw(task.ID, req)
	return task, nil
}

// CreateReducedTask records a pending import task and runs it in the
// background.
func (s *IngestService) CreateReducedTask(req ReducedRequest) (*models.IngestTask, error) {
	if _, err := os.Stat(req.Path); err != nil {
		return nil, fmt.Errorf("source file is not readable: %w", err)
	}

	task := &models.IngestTask{
		Kind:       models.TaskKindReduced,
		Status:     models.TaskStatusPending,
		SourcePath: req.Path,
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}

	go s.runReduced(task.ID, req.Path)
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *IngestService) GetTask(id int64) (*models.IngestTask, error) {
	return s.tasks.GetByID(id)
}

// ListTasks retrieves tasks, optionally filtered by status.
func (s *IngestService) ListTasks(status string, limit, offset int) ([]*models.IngestTask, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.tasks.List(status, limit, offset)
}

func (s *IngestService) runRaw(taskID int64, req RawRequest) {
	log.Printf("[IngestService] Starting raw extraction (task_id=%d, path=%s)", taskID, req.Path)
	if err := s.tasks.MarkRunning(taskID); err != nil {
		log.Printf("[IngestService] Failed to mark task %d running: %v", taskID, err)
		return
	}

	f, err := os.Open(req.Path)
	if err != nil {
		s.fail(taskID, err)
		return
	}
	defer f.Close()

	result, err := ingest.ExtractRaw(f, ingest.Options{
		YearFrom:     req.YearFrom,
		YearTo:       req.YearTo,
		SentinelLow:  s.sentinelLow,
		SentinelHigh: s.sentinelHigh,
	})
	if err != nil {
		s.fail(taskID, err)
		return
	}

	if err := s.citations.ReplaceAll(result.Records); err != nil {
		s.fail(taskID, err)
		return
	}

	if req.ExportPath != "" {
		if err := s.export(req.ExportPath, result.Records); err != nil {
			s.fail(taskID, err)
			return
		}
	}

	if err := s.tasks.MarkCompleted(taskID, result.Total, result.Kept, result.Dropped); err != nil {
		log.Printf("[IngestService] Failed to mark task %d completed: %v", taskID, err)
		return
	}
	log.Printf("[IngestService] Extraction completed (task_id=%d): %d/%d rows kept",
		taskID, result.Kept, result.Total)
}

func (s *IngestService) runReduced(taskID int64, path string) {
	log.Printf("[IngestService] Starting reduced import (task_id=%d, path=%s)", taskID, path)
	if err := s.tasks.MarkRunning(taskID); err != nil {
		log.Printf("[IngestService] Failed to mark task %d running: %v", taskID, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		s.fail(taskID, err)
		return
	}
	defer f.Close()

	records, err := ingest.ReadReduced(f)
	if err != nil {
		s.fail(taskID, err)
		return
	}
	if err := s.citations.ReplaceAll(records); err != nil {
		s.fail(taskID, err)
		return
	}

	if err := s.tasks.MarkCompleted(taskID, len(records), len(records), 0); err != nil {
		log.Printf("[IngestService] Failed to mark task %d completed: %v", taskID, err)
		return
	}
	log.Printf("[IngestService] Import completed (task_id=%d): %d rows", taskID, len(records))
}

func (s *IngestService) export(path string, records []models.Citation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	if err := ingest.WriteReduced(f, records); err != nil {
		return fmt.Errorf("failed to export reduced CSV: %w", err)
	}
	return nil
}

func (s *IngestService) fail(taskID int64, err error) {
	log.Printf("[IngestService] Task %d failed: %v", taskID, err)
	if markErr := s.tasks.MarkFailed(taskID, err.Error()); markErr != nil {
		log.Printf("[IngestService] Failed to mark task %d failed: %v", taskID, markErr)
	}
}
