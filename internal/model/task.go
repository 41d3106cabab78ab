package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingID    = errors.New("model: task id is required")
	ErrMissingTitle = errors.New("model: task title is required")
)

// Task is a single checklist entry. Title is immutable after creation;
// only Done mutates in place. Identity is the ID, never the title, so
// duplicate titles stay independently toggleable and removable.
type Task struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}
