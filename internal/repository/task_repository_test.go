package repository

import (
	"testing"

	"github.com/parkgrid/citations-backend-go/internal/models"
)

func TestTaskRepositoryLifecycle(t *testing.T) {
	repo := NewTaskRepository(testDB(t))

	task := &models.IngestTask{
		Kind:       models.TaskKindRaw,
		Status:     models.TaskStatusPending,
		SourcePath: "/data/citations.csv",
		YearFrom:   2015,
		YearTo:     2016,
	}
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("Create did not assign an ID")
	}

	if err := repo.MarkRunning(task.ID); err != nil {
		t.Fatalf("MarkRunning returned error: %v", err)
	}
	got, err := repo.GetByID(task.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != models.TaskStatusRunning {
		t.Errorf("status = %s; want running", got.Status)
	}
	if got.StartTime == nil {
		t.Error("MarkRunning did not set start time")
	}
	if got.IsTerminal() {
		t.Error("running task reported as terminal")
	}

	if err := repo.MarkCompleted(task.ID, 100, 90, 10); err != nil {
		t.Fatalf("MarkCompleted returned error: %v", err)
	}
	got, err = repo.GetByID(task.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != models.TaskStatusCompleted || !got.IsTerminal() {
		t.Errorf("status = %s; want completed/terminal", got.Status)
	}
	if got.TotalRows != 100 || got.KeptRows != 90 || got.DroppedRows != 10 {
		t.Errorf("rows = %d/%d/%d; want 100/90/10", got.TotalRows, got.KeptRows, got.DroppedRows)
	}
}

func TestTaskRepositoryMarkFailed(t *testing.T) {
	repo := NewTaskRepository(testDB(t))

	task := &models.IngestTask{
		Kind:       models.TaskKindReduced,
		Status:     models.TaskStatusPending,
		SourcePath: "/data/reduced.csv",
	}
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.MarkFailed(task.ID, "source file vanished"); err != nil {
		t.Fatalf("MarkFailed returned error: %v", err)
	}

	got, err := repo.GetByID(task.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != models.TaskStatusFailed {
		t.Errorf("status = %s; want failed", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "source file vanished" {
		t.Errorf("error message = %v; want recorded cause", got.ErrorMessage)
	}
}

func TestTaskRepositoryGetMissing(t *testing.T) {
	repo := NewTaskRepository(testDB(t))
	if _, err := repo.GetByID(9999); err == nil {
		t.Fatal("GetByID for a missing task must fail")
	}
}

func TestTaskRepositoryListByStatus(t *testing.T) {
	repo := NewTaskRepository(testDB(t))

	for i := 0; i < 3; i++ {
		task := &models.IngestTask{
			Kind:       models.TaskKindRaw,
			Status:     models.TaskStatusPending,
			SourcePath: "/data/citations.csv",
		}
		if err := repo.Create(task); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if i == 0 {
			if err := repo.MarkFailed(task.ID, "boom"); err != nil {
				t.Fatalf("MarkFailed returned error: %v", err)
			}
		}
	}

	pending, err := repo.List(models.TaskStatusPending, 10, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("pending tasks = %d; want 2", len(pending))
	}

	all, err := repo.List("", 10, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all tasks = %d; want 3", len(all))
	}
}
