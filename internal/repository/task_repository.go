package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/parkgrid/citations-backend-go/internal/models"
)

// TaskRepository handles database operations for ingest tasks.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and fills in its ID.
func (r *TaskRepository) Create(task *models.IngestTask) error {
	result, err := r.db.Exec(`
		INSERT INTO ingest_tasks (kind, status, source_path, export_path, year_from, year_to)
		VALUES (?, ?, ?, ?, ?, ?)
	`, task.Kind, task.Status, task.SourcePath, task.ExportPath, task.YearFrom, task.YearTo)
	if err != nil {
		return fmt.Errorf("failed to create ingest task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	task.ID = id
	return nil
}

const taskColumns = `
	id, kind, status, source_path, export_path, year_from, year_to,
	total_rows, kept_rows, dropped_rows, start_time, end_time,
	error_message, created_at, updated_at
`

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(id int64) (*models.IngestTask, error) {
	task := &models.IngestTask{}
	err := r.db.QueryRow(
		"SELECT"+taskColumns+"FROM ingest_tasks WHERE id = ?", id,
	).Scan(
		&task.ID, &task.Kind, &task.Status, &task.SourcePath, &task.ExportPath,
		&task.YearFrom, &task.YearTo, &task.TotalRows, &task.KeptRows,
		&task.DroppedRows, &task.StartTime, &task.EndTime, &task.ErrorMessage,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ingest task not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingest task: %w", err)
	}
	return task, nil
}

// List retrieves tasks newest first, optionally filtered by status.
func (r *TaskRepository) List(status string, limit, offset int) ([]*models.IngestTask, error) {
	query := "SELECT" + taskColumns + "FROM ingest_tasks"
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingest tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.IngestTask
	for rows.Next() {
		task := &models.IngestTask{}
		if err := rows.Scan(
			&task.ID, &task.Kind, &task.Status, &task.SourcePath, &task.ExportPath,
			&task.YearFrom, &task.YearTo, &task.TotalRows, &task.KeptRows,
			&task.DroppedRows, &task.StartTime, &task.EndTime, &task.ErrorMessage,
			&task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ingest task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// MarkRunning marks a task as running.
func (r *TaskRepository) MarkRunning(id int64) error {
	_, err := r.db.Exec(`
		UPDATE ingest_tasks
		SET status = ?, start_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, models.TaskStatusRunning, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark task as running: %w", err)
	}
	return nil
}

// MarkCompleted marks a task as completed with row counts.
func (r *TaskRepository) MarkCompleted(id int64, total, kept, dropped int) error {
	_, err := r.db.Exec(`
		UPDATE ingest_tasks
		SET status = ?, end_time = ?, total_rows = ?, kept_rows = ?,
			dropped_rows = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, models.TaskStatusCompleted, time.Now(), total, kept, dropped, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as completed: %w", err)
	}
	return nil
}

// MarkFailed marks a task as failed with an error message.
func (r *TaskRepository) MarkFailed(id int64, message string) error {
	_, err := r.db.Exec(`
		UPDATE ingest_tasks
		SET status = ?, end_time = ?, error_message = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, models.TaskStatusFailed, time.Now(), message, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as failed: %w", err)
	}
	return nil
}
