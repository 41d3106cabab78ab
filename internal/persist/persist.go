// Package persist reads and writes the task file: a JSON array of
// {"title", "done", "created_at"} objects, created_at in UNIX seconds.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasktick/internal/model"
)

type taskRecord struct {
	Title     string  `json:"title"`
	Done      bool    `json:"done"`
	CreatedAt float64 `json:"created_at"`
}

// Load reads tasks from path. A missing file yields an empty list; a
// malformed file yields an empty list plus the parse error so the
// caller can log it. Neither case is user-facing.
func Load(path string) ([]model.Task, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return []model.Task{}, fmt.Errorf("read task file: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return []model.Task{}, fmt.Errorf("decode task file: %w", err)
	}

	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			continue
		}
		out = append(out, model.Task{
			ID:        uuid.NewString(),
			Title:     title,
			Done:      rec.Done,
			CreatedAt: timeFromUnixSeconds(rec.CreatedAt),
		})
	}
	return out, nil
}

// Save writes tasks to path atomically (tmp file plus rename).
func Save(path string, tasks []model.Task) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task dir: %w", err)
		}
	}

	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			Title:     t.Title,
			Done:      t.Done,
			CreatedAt: unixSeconds(t.CreatedAt),
		})
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task file: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return os.Rename(tmp, path)
}

func unixSeconds(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

func timeFromUnixSeconds(sec float64) time.Time {
	if sec <= 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Now().UTC()
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}
