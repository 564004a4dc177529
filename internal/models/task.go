package models

import "time"

// Task kinds.
const (
	TaskKindRaw     = "raw"     // extract from the raw citation CSV
	TaskKindReduced = "reduced" // import an already-reduced CSV
)

// Task status constants.
const (
	TaskStatusPending   = "pending"
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

// IngestTask tracks one batch extraction or import run.
type IngestTask struct {
	ID           int64      `json:"id" db:"id"`
	Kind         string     `json:"kind" db:"kind"`
	Status       string     `json:"status" db:"status"`
	SourcePath   string     `json:"source_path" db:"source_path"`
	ExportPath   *string    `json:"export_path,omitempty" db:"export_path"`
	YearFrom     int        `json:"year_from,omitempty" db:"year_from"`
	YearTo       int        `json:"year_to,omitempty" db:"year_to"`
	TotalRows    int        `json:"total_rows" db:"total_rows"`
	KeptRows     int        `json:"kept_rows" db:"kept_rows"`
	DroppedRows  int        `json:"dropped_rows" db:"dropped_rows"`
	StartTime    *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" db:"end_time"`
	ErrorMessage *string    `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsTerminal returns true if the task is in a terminal state.
func (t *IngestTask) IsTerminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}
