package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Title:     "Write report",
		CreatedAt: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateMissingFields(t *testing.T) {
	task := Task{Title: "No id", CreatedAt: time.Now()}
	if err := task.Validate(); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got: %v", err)
	}

	task = Task{ID: "task-1", Title: "   ", CreatedAt: time.Now()}
	if err := task.Validate(); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got: %v", err)
	}

	task = Task{ID: "task-1", Title: "No created_at"}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for zero created_at, got nil")
	}
}
